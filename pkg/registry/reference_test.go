package registry_test

import (
	"testing"

	"github.com/atalink/saio-build/pkg/config"
	"github.com/atalink/saio-build/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageTagDefaults(t *testing.T) {
	t.Parallel()

	tag := registry.ImageTag(config.DefaultRegistryHost, config.DefaultSwiftVersion)

	assert.Equal(t, "registry.atalink.com:10443/devops/openstackswift/saio:2.31.1", tag)
}

func TestImageTagOverrides(t *testing.T) {
	t.Parallel()

	tag := registry.ImageTag("foo", "9.9.9")

	assert.Equal(t, "foo/openstackswift/saio:9.9.9", tag)
}

func TestImageTagRegistryOverrideOnly(t *testing.T) {
	t.Parallel()

	tag := registry.ImageTag("foo", config.DefaultSwiftVersion)

	assert.Equal(t, "foo/openstackswift/saio:2.31.1", tag)
}

func TestImageTagVersionOverrideOnly(t *testing.T) {
	t.Parallel()

	tag := registry.ImageTag(config.DefaultRegistryHost, "9.9.9")

	assert.Equal(t, "registry.atalink.com:10443/devops/openstackswift/saio:9.9.9", tag)
}

func TestParseImageTagDefaults(t *testing.T) {
	t.Parallel()

	tag, err := registry.ParseImageTag(config.DefaultRegistryHost, config.DefaultSwiftVersion)
	require.NoError(t, err)

	assert.Equal(t, "registry.atalink.com:10443", tag.RegistryStr())
	assert.Equal(t, "devops/openstackswift/saio", tag.RepositoryStr())
	assert.Equal(t, "2.31.1", tag.TagStr())
}

func TestParseImageTagOverrides(t *testing.T) {
	t.Parallel()

	tag, err := registry.ParseImageTag("foo", "9.9.9")
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", tag.TagStr())
}
