/*
Package tinker converts the parameters in Tinker/AMOEBA prm files.

Each record is a keyword followed by atom classes (or types) and parameters,
all separated by spaces. Multipoles span five lines, a header with the atom type,
the local frame and the monopole, and four more lines with the dipole and the
lower triangle of the quadrupole:

	multipole     7   44   10               -0.14168
	                                         0.07684    0.00000    0.42468
	                                         0.07677
	                                         0.00000   -1.10639
	                                        -0.13195    0.00000    1.02962

Supported records are bond, angle (and anglep), strbnd, torsion, vdw, opbend,
pitors, multipole (z-then-x and z-then-x-then-y frames only) and polarize
(up to 3 polarization groups). Everything else passes through.
*/
package tinker
