// Package docker provides a thin client around the docker CLI for building
// container images.
//
// The build runs as a subprocess so the docker CLI's own exit status can be
// propagated unchanged, including the shell's 127 command-not-found
// convention when the binary is missing from PATH.
package docker
