// Package catalog defines the program descriptors shown by depot.
//
// A catalog is an ordered, immutable slice of Program values supplied at
// composition time. The built-in table (Default) holds a single entry; a
// TOML file can replace it:
//
//	[[program]]
//	name = "Total Installer"
//	description = "Complete installer from strombackfamily.com"
//	icon = "assets/images/total_installer.png"
//	file = "assets/downloads/total_installer.exe"
//
// Icon and file paths are not checked. A wrong icon renders as a dead
// reference and a wrong file fails when the opener runs; neither is reported
// here.
package catalog
