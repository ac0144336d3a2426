package converters

import (
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/listo/internal/models"
)

// ============================================================================
// TEST CASES - Credential
// ============================================================================

func TestEncodeDecodeCredential(t *testing.T) {
	in := models.Credential{Username: "Ana", Email: "ana@example.com", Password: "secret1"}

	data, err := EncodeCredential(in)
	if err != nil {
		t.Fatalf("EncodeCredential failed: %v", err)
	}
	if !strings.Contains(string(data), `"password":"secret1"`) {
		t.Errorf("Expected password field in %s", data)
	}

	out, err := DecodeCredential(data)
	if err != nil {
		t.Fatalf("DecodeCredential failed: %v", err)
	}
	if out != in {
		t.Errorf("Expected %+v, got %+v", in, out)
	}
}

func TestDecodeCredential_Rejects(t *testing.T) {
	for _, input := range []string{`[]`, `{"username":"a","email":"b"}`, `{"username":1,"email":"b","password":"c"}`, `{`} {
		if _, err := DecodeCredential([]byte(input)); err == nil {
			t.Errorf("Expected error decoding %s", input)
		} else if errors.Is(err, models.ErrStorage) {
			t.Errorf("Converters must not classify errors, got %v", err)
		}
	}
}
