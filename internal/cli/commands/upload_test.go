package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_S3Flags(t *testing.T) {
	cmd := Upload(S3)

	require.NotNil(t, cmd.Flags().Lookup("s3-path"))
	require.NotNil(t, cmd.Flags().Lookup("public"))
	assert.Nil(t, cmd.Flags().Lookup("space-path"))
	assert.Nil(t, cmd.Flags().Lookup("private"))

	public := cmd.Flags().Lookup("public")
	assert.Equal(t, "false", public.DefValue, "S3 uploads default to private")
}

func TestUpload_SpacesFlags(t *testing.T) {
	cmd := Upload(Spaces)

	require.NotNil(t, cmd.Flags().Lookup("space-path"))
	require.NotNil(t, cmd.Flags().Lookup("private"))
	assert.Nil(t, cmd.Flags().Lookup("s3-path"))
	assert.Nil(t, cmd.Flags().Lookup("public"))

	private := cmd.Flags().Lookup("private")
	assert.Equal(t, "false", private.DefValue, "Spaces uploads default to public-read")
}

func TestUpload_RequiresFileArg(t *testing.T) {
	cmd := Upload(S3)
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"file.txt"}))
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}))
}

func TestUploadURL_Flags(t *testing.T) {
	cmd := UploadURL(Spaces)

	require.NotNil(t, cmd.Flags().Lookup("filename"))
	require.NotNil(t, cmd.Flags().Lookup("space-path"))
	require.NotNil(t, cmd.Flags().Lookup("private"))
}

func TestList_Flags(t *testing.T) {
	cmd := List(S3)

	require.NotNil(t, cmd.Flags().Lookup("prefix"))
	max := cmd.Flags().Lookup("max")
	require.NotNil(t, max)
	assert.Equal(t, "100", max.DefValue)
}

func TestDelete_RequiresKeyArg(t *testing.T) {
	cmd := Delete(S3)
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"documents/a.pdf"}))
}
