package bls

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAndRecoverSecretKey(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	shares, com, err := Split(sk, 3, 5)
	require.NoError(t, err)
	require.Len(t, shares, 5)
	assert.Equal(t, 3, com.Threshold())

	t.Run("threshold shares recover the key", func(t *testing.T) {
		recovered, err := RecoverSecretKey(shares[:3], 3)
		require.NoError(t, err)
		assert.True(t, sk.Equal(recovered))
	})

	t.Run("any threshold subset works", func(t *testing.T) {
		subset := []*KeyShare{shares[4], shares[0], shares[2]}
		recovered, err := RecoverSecretKey(subset, 3)
		require.NoError(t, err)
		assert.True(t, sk.Equal(recovered))
	})

	t.Run("below threshold fails", func(t *testing.T) {
		_, err := RecoverSecretKey(shares[:2], 3)
		assert.True(t, errors.Is(err, ErrInsufficientShares))
	})

	t.Run("duplicate shares fail", func(t *testing.T) {
		_, err := RecoverSecretKey([]*KeyShare{shares[0], shares[0], shares[1]}, 3)
		assert.True(t, errors.Is(err, ErrDuplicateIndex))
	})

	t.Run("nil share reports its slice position", func(t *testing.T) {
		_, err := RecoverSecretKey([]*KeyShare{shares[0], nil, shares[2]}, 3)
		var shareErr *ShareError
		require.True(t, errors.As(err, &shareErr))
		// Positions are not share indices; the index field stays at the
		// never-valid 0 and the position travels in the reason.
		assert.Equal(t, uint32(0), shareErr.Index)
		assert.Contains(t, shareErr.Error(), "position 1")
	})

	t.Run("group public key matches", func(t *testing.T) {
		assert.True(t, sk.PublicKey().Equal(com.GroupPublicKey()))
	})

	t.Run("invalid parameters", func(t *testing.T) {
		_, _, err := Split(sk, 0, 5)
		assert.Error(t, err)
		_, _, err = Split(sk, 6, 5)
		assert.Error(t, err)
	})
}

func TestShareCommitmentVerification(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	shares, com, err := Split(sk, 2, 4)
	require.NoError(t, err)

	t.Run("honest shares verify", func(t *testing.T) {
		for _, s := range shares {
			assert.True(t, com.VerifyKeyShare(s))
			assert.True(t, com.VerifyPublicShare(s.PublicShare()))
		}
	})

	t.Run("tampered share rejected", func(t *testing.T) {
		other, err := GenerateKey(rand.Reader)
		require.NoError(t, err)
		bad := &KeyShare{Index: shares[0].Index, SecretKey: other}
		assert.False(t, com.VerifyKeyShare(bad))
	})

	t.Run("relabeled share rejected", func(t *testing.T) {
		bad := &KeyShare{Index: shares[1].Index, SecretKey: shares[0].SecretKey}
		assert.False(t, com.VerifyKeyShare(bad))
	})

	t.Run("nil share rejected", func(t *testing.T) {
		assert.False(t, com.VerifyKeyShare(nil))
		assert.False(t, com.VerifyPublicShare(nil))
	})
}

func TestThresholdSigning(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	pk := sk.PublicKey()
	msg := []byte("threshold-signed message")

	shares, com, err := Split(sk, 3, 5)
	require.NoError(t, err)

	// Shares 0, 2 and 4 participate.
	signers := []*KeyShare{shares[0], shares[2], shares[4]}
	sigShares := make([]*SignatureShare, len(signers))
	for i, s := range signers {
		sigShares[i], err = s.PartialSign(msg, testDST)
		require.NoError(t, err)
	}

	t.Run("partial signatures verify individually", func(t *testing.T) {
		for i, s := range signers {
			ok, err := VerifyPartialSignature(s.PublicShare(), msg, sigShares[i], testDST)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("recovered signature verifies under the group key", func(t *testing.T) {
		sig, err := RecoverSignature(sigShares, 3)
		require.NoError(t, err)

		ok, err := Verify(pk, msg, sig, testDST)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = Verify(com.GroupPublicKey(), msg, sig, testDST)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("recovered signature equals the direct one", func(t *testing.T) {
		direct, err := Sign(sk, msg, testDST)
		require.NoError(t, err)
		recovered, err := RecoverSignature(sigShares, 3)
		require.NoError(t, err)
		assert.True(t, direct.Equal(recovered))
	})

	t.Run("below threshold fails", func(t *testing.T) {
		_, err := RecoverSignature(sigShares[:2], 3)
		assert.True(t, errors.Is(err, ErrInsufficientShares))
	})

	t.Run("corrupted partial signature is identified", func(t *testing.T) {
		intruder, err := GenerateKey(rand.Reader)
		require.NoError(t, err)
		forged, err := Sign(intruder, msg, testDST)
		require.NoError(t, err)

		bad := &SignatureShare{Index: sigShares[1].Index, Signature: forged}
		ok, err := VerifyPartialSignature(signers[1].PublicShare(), msg, bad, testDST)
		require.NoError(t, err)
		assert.False(t, ok)

		// Reconstruction with the bad share yields a signature that does not
		// verify, which is why partials are checked first.
		sig, err := RecoverSignature([]*SignatureShare{sigShares[0], bad, sigShares[2]}, 3)
		require.NoError(t, err)
		ok, err = Verify(pk, msg, sig, testDST)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("mismatched share indices error", func(t *testing.T) {
		_, err := VerifyPartialSignature(signers[0].PublicShare(), msg, sigShares[1], testDST)
		var shareErr *ShareError
		assert.True(t, errors.As(err, &shareErr))
	})
}

func TestRecoverPublicKey(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)

	shares, _, err := Split(sk, 2, 3)
	require.NoError(t, err)

	pkShares := []*PublicKeyShare{shares[0].PublicShare(), shares[2].PublicShare()}
	recovered, err := RecoverPublicKey(pkShares, 2)
	require.NoError(t, err)
	assert.True(t, sk.PublicKey().Equal(recovered))

	_, err = RecoverPublicKey(pkShares[:1], 2)
	assert.True(t, errors.Is(err, ErrInsufficientShares))
}

func TestRefreshShares(t *testing.T) {
	sk, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	msg := []byte("post-refresh message")

	shares, com, err := Split(sk, 3, 5)
	require.NoError(t, err)

	refreshed, updated, err := RefreshShares(shares, 3, com)
	require.NoError(t, err)
	require.Len(t, refreshed, 5)
	require.NotNil(t, updated)

	t.Run("secret is preserved", func(t *testing.T) {
		recovered, err := RecoverSecretKey(refreshed[:3], 3)
		require.NoError(t, err)
		assert.True(t, sk.Equal(recovered))
	})

	t.Run("group public key is preserved", func(t *testing.T) {
		assert.True(t, com.GroupPublicKey().Equal(updated.GroupPublicKey()))
	})

	t.Run("share values change", func(t *testing.T) {
		changed := false
		for i := range shares {
			if !shares[i].SecretKey.Equal(refreshed[i].SecretKey) {
				changed = true
			}
		}
		assert.True(t, changed)
	})

	t.Run("refreshed shares verify against the updated commitment", func(t *testing.T) {
		for _, s := range refreshed {
			assert.True(t, updated.VerifyKeyShare(s))
			assert.False(t, com.VerifyKeyShare(s))
		}
	})

	t.Run("refreshed shares still sign", func(t *testing.T) {
		sigShares := make([]*SignatureShare, 3)
		for i, s := range refreshed[1:4] {
			sigShares[i], err = s.PartialSign(msg, testDST)
			require.NoError(t, err)
		}
		sig, err := RecoverSignature(sigShares, 3)
		require.NoError(t, err)
		ok, err := Verify(sk.PublicKey(), msg, sig, testDST)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("refresh without commitment", func(t *testing.T) {
		again, updated, err := RefreshShares(refreshed, 3, nil)
		require.NoError(t, err)
		assert.Nil(t, updated)
		recovered, err := RecoverSecretKey(again[2:], 3)
		require.NoError(t, err)
		assert.True(t, sk.Equal(recovered))
	})
}
