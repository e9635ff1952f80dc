// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestPublicKey_MarshalParse(t *testing.T) {
	priv, _ := testKeyPairs(t)

	encoded, err := MarshalPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	pub, err := ParsePublicKey(encoded)
	require.NoError(t, err)
	assert.True(t, priv.PublicKey.Equal(pub))
}

func TestParsePublicKey_Invalid(t *testing.T) {
	_, err := ParsePublicKey("not base64!")
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = ParsePublicKey("AAAA")
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestPrivateKeyPEM_RoundTrip(t *testing.T) {
	priv, _ := testKeyPairs(t)

	data, err := EncodePrivateKeyPEM(priv)
	require.NoError(t, err)

	got, err := DecodePrivateKeyPEM(data)
	require.NoError(t, err)
	assert.True(t, priv.Equal(got))

	_, err = DecodePrivateKeyPEM([]byte("garbage"))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestGenerateKeyPair_RejectsSmallKeys(t *testing.T) {
	_, err := GenerateKeyPair(1024)
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestSealToken_OpenToken(t *testing.T) {
	priv, other := testKeyPairs(t)
	token := "Zm9vYmFyYmF6cXV4LXRva2VuLWZvci10aGUtY29udGFjdA"

	sealed, err := SealToken(token, &priv.PublicKey)
	require.NoError(t, err)
	assert.NotContains(t, sealed, token)

	opened, err := OpenToken(sealed, priv)
	require.NoError(t, err)
	assert.Equal(t, token, opened)

	_, err = OpenToken(sealed, other)
	assert.ErrorIs(t, err, ErrUnwrapFailed)

	_, err = OpenToken("not base64!", priv)
	assert.ErrorIs(t, err, ErrUnwrapFailed)

	_, err = SealToken(token, nil)
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}
