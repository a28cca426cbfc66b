package app

import (
	"bytes"
	"testing"

	config "github.com/DRSN-tech/cosmetic-product/internal/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	var out, logOut bytes.Buffer
	cfg := &config.Config{
		App: &config.AppCfg{CurrentDate: "2024-09-01"},
		Log: &config.LogCfg{Level: "debug", Format: "json"},
	}

	require.NoError(t, NewApp(cfg, &out, &logOut).Run())

	assert.Contains(t, out.String(), "Discount of 15% applied. New price: 1096.50 RUB.\n")
	assert.Contains(t, out.String(), "Expired: false\n")
	assert.Contains(t, logOut.String(), "showcase completed")
	assert.NotContains(t, logOut.String(), "Discount")
}
