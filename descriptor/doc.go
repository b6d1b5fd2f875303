// Package descriptor assembles fixed-order numeric descriptor vectors for
// chemical structures.
//
// The chemistry itself (atom and bond perception, stereochemistry
// assignment, hydrogen-bond and lipophilicity estimation, elementary-ring
// enumeration) is supplied by an external toolkit behind the Structure
// interface; this package only consumes those attributes and arranges them
// into the 17-field Vector used by the spread statistics in package
// spatial.
package descriptor
