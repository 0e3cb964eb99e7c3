package commitment

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-bls-tss/internal/crypto/shamir"
)

func TestCommitAndVerifyShare(t *testing.T) {
	var secret fr.Element
	secret.SetUint64(7777)

	shares, poly, err := shamir.Split(&secret, 3, 5)
	require.NoError(t, err)

	c := Commit(poly)
	require.Len(t, c, 3)

	t.Run("honest shares verify", func(t *testing.T) {
		for i := range shares {
			assert.True(t, c.VerifyShare(&shares[i].Index, &shares[i].Value),
				"share %d must verify", i)
		}
	})

	t.Run("tampered value rejected", func(t *testing.T) {
		var bad fr.Element
		bad.SetOne()
		bad.Add(&shares[0].Value, &bad)
		assert.False(t, c.VerifyShare(&shares[0].Index, &bad))
	})

	t.Run("wrong index rejected", func(t *testing.T) {
		var wrongIndex fr.Element
		wrongIndex.SetUint64(99)
		assert.False(t, c.VerifyShare(&wrongIndex, &shares[0].Value))
	})

	t.Run("empty commitment rejects everything", func(t *testing.T) {
		var empty Commitment
		assert.False(t, empty.VerifyShare(&shares[0].Index, &shares[0].Value))
	})
}

func TestPublicPoint(t *testing.T) {
	var secret fr.Element
	secret.SetUint64(123)

	_, poly, err := shamir.Split(&secret, 2, 3)
	require.NoError(t, err)

	c := Commit(poly)
	want := engine.G1ScalarBaseMult(&secret)
	got := c.PublicPoint()
	assert.True(t, got.Equal(&want))
}

func TestAddTracksRefresh(t *testing.T) {
	var secret fr.Element
	secret.SetUint64(2024)

	shares, poly, err := shamir.Split(&secret, 3, 4)
	require.NoError(t, err)
	c := Commit(poly)

	refreshed, mask, err := shamir.Refresh(shares, 3)
	require.NoError(t, err)

	combined := c.Add(Commit(mask))
	require.NotNil(t, combined)

	for i := range refreshed {
		assert.True(t, combined.VerifyShare(&refreshed[i].Index, &refreshed[i].Value),
			"refreshed share %d must verify against the combined commitment", i)
	}

	// The public point is unchanged: the mask commits to zero.
	orig := c.PublicPoint()
	upd := combined.PublicPoint()
	assert.True(t, orig.Equal(&upd))

	t.Run("length mismatch", func(t *testing.T) {
		assert.Nil(t, c.Add(c[:1]))
	})
}
