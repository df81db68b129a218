package apierrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindNetwork, OpLogin, "", cause)

	assert.Equal(t, KindNetwork, err.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), OpLogin)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNew_EmptyMessageUsesFallback(t *testing.T) {
	err := New(KindServerRejection, OpLogin, "")
	assert.Equal(t, "Login failed. Please try again.", err.Message)

	err = New(KindServerRejection, OpLogin, "Invalid credentials")
	assert.Equal(t, "Invalid credentials", err.Message)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"tagged error", New(KindValidation, OpSignUp, "bad email"), KindValidation},
		{"wrapped tagged error", fmt.Errorf("outer: %w", New(KindStorage, OpLogout, "")), KindStorage},
		{"plain error", errors.New("boom"), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
			if tt.want != 0 {
				assert.True(t, IsKind(tt.err, tt.want))
			}
		})
	}
}

func TestDisplayMessage_NeverTechnical(t *testing.T) {
	// Errors outside the taxonomy collapse to the generic fallback.
	msg := DisplayMessage(errors.New("dial tcp 10.0.0.1:443: i/o timeout"))
	assert.Equal(t, genericFallback, msg)
	assert.NotContains(t, msg, "tcp")

	msg = DisplayMessage(New(KindServerRejection, OpLogin, "Invalid credentials"))
	assert.Equal(t, "Invalid credentials", msg)
}

func TestFallback_CoversEveryOperation(t *testing.T) {
	ops := []string{
		OpSignUp, OpVerifySignupOTP, OpLogin, OpValidateToken,
		OpRequestPasswordReset, OpVerifyPassResetOTP, OpResetPassword,
		OpLogout, OpHydrate,
	}

	for _, op := range ops {
		assert.NotEmpty(t, Fallback(op), "operation %q must have a fallback message", op)
		assert.NotEqual(t, genericFallback, Fallback(op), "operation %q should carry a specific message", op)
	}

	assert.Equal(t, genericFallback, Fallback("unknown_op"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "server_rejection", KindServerRejection.String())
	assert.Equal(t, "storage", KindStorage.String())
	assert.Equal(t, "invariant", KindInvariant.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
