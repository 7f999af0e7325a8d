package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"adzuna", "francetravail"}, Names())
}

func TestNew(t *testing.T) {
	cfg := &config.Config{
		FranceTravail: config.FranceTravail{ClientID: "id", ClientSecret: "secret"},
		Adzuna:        config.Adzuna{AppID: "app", AppKey: "key"},
	}

	src, err := New("FranceTravail", cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "FranceTravail", src.Name())

	src, err = New(" adzuna ", cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "Adzuna", src.Name())
}

func TestNew_Errors(t *testing.T) {
	_, err := New("remoteok", &config.Config{}, nil)
	assert.ErrorIs(t, err, importer.ErrConfiguration)
	assert.Contains(t, err.Error(), "adzuna, francetravail")

	_, err = New("francetravail", &config.Config{}, nil)
	assert.ErrorIs(t, err, importer.ErrConfiguration)
}
