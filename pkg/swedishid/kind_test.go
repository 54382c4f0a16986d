package swedishid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"personnummer", KindPersonnummer, false},
		{" Person ", KindPersonnummer, false},
		{"coordination", KindSamordningsnummer, false},
		{"SAMORDNINGSNUMMER", KindSamordningsnummer, false},
		{"org", KindOrganisationsnummer, false},
		{"organization", KindOrganisationsnummer, false},
		{"", "", true},
		{"passport", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}

	assert.False(t, Kind("passport").IsValid())
}

func TestParse_Dispatch(t *testing.T) {
	t.Run("personnummer", func(t *testing.T) {
		id, err := Parse(KindPersonnummer, "870506-5558")
		require.NoError(t, err)
		p, ok := id.(PersonalNumber)
		require.True(t, ok)
		assert.Equal(t, KindPersonnummer, p.Kind())
	})

	t.Run("samordningsnummer", func(t *testing.T) {
		id, err := Parse(KindSamordningsnummer, "701063-2391")
		require.NoError(t, err)
		assert.Equal(t, KindSamordningsnummer, id.Kind())
		assert.Equal(t, "7010632391", id.Number())
	})

	t.Run("organisationsnummer", func(t *testing.T) {
		id, err := Parse(KindOrganisationsnummer, "202100-5448")
		require.NoError(t, err)
		o, ok := id.(OrganisationNumber)
		require.True(t, ok)
		assert.Equal(t, CompanyFormGovernmentAgency, o.ProbableCompanyForm())
	})

	t.Run("errors return nil identity", func(t *testing.T) {
		id, err := Parse(KindPersonnummer, "870506-5550")
		assert.ErrorIs(t, err, ErrCheckDigit)
		assert.Nil(t, id)
	})

	t.Run("unknown kind", func(t *testing.T) {
		id, err := Parse(Kind("passport"), "870506-5558")
		require.Error(t, err)
		assert.Nil(t, id)
	})
}

// TestParse_EmptyInputEveryKind checks the shared empty-input boundary.
func TestParse_EmptyInputEveryKind(t *testing.T) {
	for _, kind := range []Kind{KindPersonnummer, KindSamordningsnummer, KindOrganisationsnummer} {
		_, err := Parse(kind, "")
		assert.ErrorIs(t, err, ErrEmptyInput, kind.String())
	}
}

// TestParse_RoundTrip checks that the stored number equals the normalized
// input for canonical ten-digit numbers.
func TestParse_RoundTrip(t *testing.T) {
	inputs := map[Kind][]string{
		KindPersonnummer:        {"870506-5558", "870506+5558"},
		KindSamordningsnummer:   {"701063-2391", "870566-5563"},
		KindOrganisationsnummer: {"556011-7482", "916622-3959"},
	}
	for kind, raws := range inputs {
		for _, raw := range raws {
			id, err := Parse(kind, raw)
			require.NoError(t, err, raw)
			normalized, err := Normalize(raw)
			require.NoError(t, err)
			assert.Equal(t, normalized, id.Number())
		}
	}
}
