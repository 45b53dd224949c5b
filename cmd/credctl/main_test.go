package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/store-dashboard/pkg/credential"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_EncodeThenDecode(t *testing.T) {
	plain := `{"tokens":"tok-1","role":"manager"}`

	encoded, err := runCommand(t, "", "encode", plain)
	require.NoError(t, err)
	assert.Equal(t, credential.DefaultCodec().Encode(plain)+"\n", encoded)

	decoded, err := runCommand(t, encoded, "decode")
	require.NoError(t, err)
	assert.Equal(t, plain+"\n", decoded)
}

func TestRun_EncodeWithCustomKey(t *testing.T) {
	codec, err := credential.NewCodec([]byte("custom"))
	require.NoError(t, err)

	out, err := runCommand(t, "", "encode", "--key", "custom", "value")
	require.NoError(t, err)
	assert.Equal(t, codec.Encode("value")+"\n", out)
}

func TestRun_DecodeReturnsErrorForMalformedValue(t *testing.T) {
	_, err := runCommand(t, "", "decode", "not base64 !!")
	assert.ErrorIs(t, err, credential.ErrDecode)
}

func TestRun_Header(t *testing.T) {
	out, err := runCommand(t, "", "header", "--op", "read", "--secret", "GET123", "--login-token", "abc.def")
	require.NoError(t, err)
	assert.Equal(t, "Basic dXNlcjp7ImdldFRva2VuIjoiR0VUMTIzIiwibG9naW5Ub2tlbiI6ImFiYy5kZWYifQ==\n", out)
}

func TestRun_HeaderStrictReturnsErrorForEmptyLoginToken(t *testing.T) {
	_, err := runCommand(t, "", "header", "--op", "write", "--secret", "POST456", "--strict")
	assert.ErrorIs(t, err, credential.ErrAuthentication)

	out, err := runCommand(t, "", "header", "--op", "write", "--secret", "POST456")
	require.NoError(t, err)
	assert.Equal(t, "Basic dXNlcjp7InBvc3RUb2tlbiI6IlBPU1Q0NTYiLCJsb2dpblRva2VuIjoiIn0=\n", out)
}

func TestRun_ReturnsUsageError(t *testing.T) {
	tests := [][]string{
		{},
		{"unknown"},
		{"header", "--op", "delete"},
		{"encode", "a", "b"},
		{"decode", "--unknown-flag"},
	}

	for _, args := range tests {
		_, err := runCommand(t, "", args...)
		assert.ErrorIs(t, err, errUsage, args)
	}
}
