/*
Package omm writes converted parameter terms as OpenMM force-field XML elements.

Only the elements themselves are produced, one per term. Putting them under the
right force (HarmonicBondForce, NonbondedForce, AmoebaMultipoleForce...) in a
complete force-field file is left to the user.

The attribute names and number formats follow what OpenMM's own conversion tools
write for each source: AMBER and LAMMPS parameters are written by atom type, with
all the significant digits, while Tinker parameters are written by atom class with
fixed precisions.
*/
package omm
