package checkin

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "checkin-test-secret"

var (
	issued = time.Date(2025, 11, 16, 14, 10, 0, 0, time.UTC)
	ends   = time.Date(2025, 11, 16, 16, 0, 0, 0, time.UTC)
)

func TestGenerateAndParseCode(t *testing.T) {
	code, err := GenerateCode(4, issued, ends, testSecret)
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	claims, err := ParseCode(code, testSecret, issued.Add(time.Minute))
	if err != nil {
		t.Fatalf("ParseCode: %v", err)
	}
	if claims.EventID != 4 {
		t.Errorf("event_id: got %d, want 4", claims.EventID)
	}
	if claims.Subject != "4" || claims.Issuer != Issuer {
		t.Errorf("registered claims: %+v", claims.RegisteredClaims)
	}
}

func TestGenerateCode_UniquePerCall(t *testing.T) {
	a, _ := GenerateCode(4, issued, ends, testSecret)
	b, _ := GenerateCode(4, issued, ends, testSecret)
	if a == b {
		t.Error("expected distinct codes for the same event")
	}
}

func TestGenerateCode_AlreadyExpired(t *testing.T) {
	if _, err := GenerateCode(3, ends, issued, testSecret); err == nil {
		t.Error("expected error for an event that has ended")
	}
}

func TestParseCode_WrongSecret(t *testing.T) {
	code, _ := GenerateCode(4, issued, ends, testSecret)
	if _, err := ParseCode(code, "other-secret", issued); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseCode_Expired(t *testing.T) {
	code, _ := GenerateCode(4, issued, ends, testSecret)
	if _, err := ParseCode(code, testSecret, ends.Add(time.Minute)); err == nil {
		t.Error("expected error for expired code")
	}
}

func TestParseCode_RejectsForeignIssuer(t *testing.T) {
	claims := Claims{
		EventID: 4,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(ends),
		},
	}
	code, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseCode(code, testSecret, issued); err == nil {
		t.Error("expected error for foreign issuer")
	}
}

func TestParseCode_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		EventID: 4,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(ends),
		},
	}
	code, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseCode(code, testSecret, issued); err == nil {
		t.Error("expected error for unsigned code")
	}
}

func TestParseCode_Garbage(t *testing.T) {
	if _, err := ParseCode("not-a-code", testSecret, issued); err == nil {
		t.Error("expected error for malformed code")
	}
}
