package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits_Omega(t *testing.T) {
	out, err := execute(t, "limits", "omega", "--terms", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "ω = < 1 2 3 4 5 ... | >")
	assert.Contains(t, out, "truncated to 4 terms")
	assert.Contains(t, out, "= 5")
}

func TestLimits_Epsilon(t *testing.T) {
	out, err := execute(t, "--format", "json", "limits", "epsilon", "--terms", "3")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Name     string  `json:"name"`
			Terms    int     `json:"terms"`
			Resolved bool    `json:"resolved"`
			Value    float64 `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ϵ", resp.Data.Name)
	assert.True(t, resp.Data.Resolved)
	assert.Equal(t, 0.0625, resp.Data.Value)
}

func TestLimits_UnknownName(t *testing.T) {
	_, err := execute(t, "limits", "aleph")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLimits_RejectsBadTerms(t *testing.T) {
	_, err := execute(t, "limits", "omega", "--terms", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
