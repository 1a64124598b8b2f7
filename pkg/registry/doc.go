// Package registry provides utilities for constructing the SAIO image reference.
//
// The image reference has the fixed shape
// <registryHost>/openstackswift/saio:<swiftVersion>, where the registry host
// and Swift version come from the resolved configuration.
package registry
