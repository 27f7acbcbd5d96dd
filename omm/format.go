/*
 * format.go, part of ffconv.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package omm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var sf func(string, ...any) string = fmt.Sprintf

// Shortest returns the shortest decimal string that parses back to f.
// The string always has a decimal point or an exponent, and uses an exponent
// for magnitudes under 1e-4 or over 1e16.
func Shortest(f float64) string {
	abs := math.Abs(f)
	if f != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

// attr returns ` name="value"`
func attr(name, value string) string {
	return sf(` %s="%s"`, name, value)
}

// numbered returns the attributes prefix1="v1" prefix2="v2"..., one per value
func numbered(prefix string, values []string) string {
	var b strings.Builder
	for i, v := range values {
		b.WriteString(attr(sf("%s%d", prefix, i+1), v))
	}
	return b.String()
}

func integer(f float64) string {
	return strconv.Itoa(int(math.Round(f)))
}
