package signature_test

import (
	"errors"
	"testing"

	"github.com/hookproof/hookproof/signature"
)

func TestParseHeaderBasic(t *testing.T) {
	sh, err := signature.ParseHeader("t=1700000000,v1=abc", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	if !sh.HasTimestamp || sh.Timestamp != 1700000000 {
		t.Fatalf("expected timestamp 1700000000, got %+v", sh)
	}
	if len(sh.Signatures) != 1 || sh.Signatures[0] != "abc" {
		t.Fatalf("expected single signature abc, got %v", sh.Signatures)
	}
}

func TestParseHeaderEmpty(t *testing.T) {
	sh, err := signature.ParseHeader("", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	if sh.HasTimestamp {
		t.Error("empty header should have no timestamp")
	}
	if len(sh.Signatures) != 0 {
		t.Errorf("empty header should have no signatures, got %v", sh.Signatures)
	}
}

func TestParseHeaderUnsupportedScheme(t *testing.T) {
	_, err := signature.ParseHeader("t=1,v2=abc", signature.Scheme("v2"))
	if !errors.Is(err, signature.ErrUnsupportedScheme) {
		t.Fatalf("expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestParseHeaderMultipleSignaturesPreserveOrder(t *testing.T) {
	sh, err := signature.ParseHeader("t=1,v1=first,v1=second,v1=third", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "second", "third"}
	if len(sh.Signatures) != len(want) {
		t.Fatalf("expected %d signatures, got %d", len(want), len(sh.Signatures))
	}
	for i, sig := range want {
		if sh.Signatures[i] != sig {
			t.Errorf("signature %d: expected %q, got %q", i, sig, sh.Signatures[i])
		}
	}
}

func TestParseHeaderUnknownKeysIgnored(t *testing.T) {
	sh, err := signature.ParseHeader("t=5,v0=old,v1=sig,extra=stuff", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	if sh.Timestamp != 5 || len(sh.Signatures) != 1 || sh.Signatures[0] != "sig" {
		t.Fatalf("unknown keys should be ignored, got %+v", sh)
	}
}

func TestParseHeaderMalformedItemsSkipped(t *testing.T) {
	sh, err := signature.ParseHeader("garbage,t=7,noequals,v1=sig", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	if sh.Timestamp != 7 || len(sh.Signatures) != 1 {
		t.Fatalf("malformed items should be skipped, got %+v", sh)
	}
}

func TestParseHeaderBadTimestampSkipped(t *testing.T) {
	sh, err := signature.ParseHeader("t=notanumber,v1=sig", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	if sh.HasTimestamp {
		t.Error("unparsable timestamp should leave the header without one")
	}
	if len(sh.Signatures) != 1 {
		t.Errorf("signatures should still be collected, got %v", sh.Signatures)
	}
}

func TestParseHeaderRepeatedTimestampLastWins(t *testing.T) {
	sh, err := signature.ParseHeader("t=1,t=2,v1=sig", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	if sh.Timestamp != 2 {
		t.Errorf("expected last timestamp to win, got %d", sh.Timestamp)
	}
}

func TestParseHeaderNegativeTimestamp(t *testing.T) {
	sh, err := signature.ParseHeader("t=-5,v1=sig", signature.SchemeV1)
	if err != nil {
		t.Fatal(err)
	}
	if !sh.HasTimestamp || sh.Timestamp != -5 {
		t.Fatalf("negative timestamps parse as integers, got %+v", sh)
	}
}
