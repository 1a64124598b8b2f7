package registry

import (
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
)

// ImageRepository is the repository path of the SAIO image within the registry.
const ImageRepository = "openstackswift/saio"

// ImageTag constructs the full image reference string for the given registry
// host and Swift version. The result is passed verbatim to the build tool.
func ImageTag(registryHost, swiftVersion string) string {
	return fmt.Sprintf("%s/%s:%s", registryHost, ImageRepository, swiftVersion)
}

// ParseImageTag constructs the image reference and parses it into a typed tag.
// WeakValidation keeps parsing lenient and Insecure allows registries that
// serve plain HTTP on non-standard ports.
func ParseImageTag(registryHost, swiftVersion string) (name.Tag, error) {
	tag, err := name.NewTag(
		ImageTag(registryHost, swiftVersion),
		name.WeakValidation,
		name.Insecure,
	)
	if err != nil {
		return name.Tag{}, fmt.Errorf("parse image tag: %w", err)
	}

	return tag, nil
}
