/*
Package frcmod converts the parameters in AMBER frcmod files.

A frcmod file is made of blocks, each starting with a header (BOND, ANGLE,
DIHE, IMPROPER, NONBON) and ending with a blank line. In each block,
the atom types are given in the first columns, separated by hyphens, and the
parameters follow, separated by spaces:

	BOND
	c3-h1  330.60   1.097

	IMPROPER
	c -c3-n -c3         1.1          180.0         2.0

Only the first block of each kind is read. MASS blocks, remarks and anything else
outside the supported blocks is returned unchanged.
*/
package frcmod
