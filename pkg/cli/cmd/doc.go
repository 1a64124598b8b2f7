// Package cmd defines the saio-build command.
package cmd
