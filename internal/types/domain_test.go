package types

import (
	"encoding/json"
	"testing"
)

func TestAgeGateStatus_UnknownWireCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want AgeGateStatus
	}{
		{`"Allowed"`, StatusAllowed},
		{`"Blocked"`, StatusBlocked},
		{`"Pending"`, StatusPending},
		{`"IdentityVerified"`, StatusIdentityVerified},
		{`"AgeVerified"`, StatusAgeVerified},
		{`"SomethingNew"`, StatusUndefined},
		{`""`, StatusUndefined},
	}
	for _, c := range cases {
		var got AgeGateStatus
		if err := json.Unmarshal([]byte(c.in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("status %s: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestAgeGateAction_UnknownWireCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want AgeGateAction
	}{
		{`"Allow"`, ActionAllow},
		{`"Block"`, ActionBlock},
		{`"Consent"`, ActionConsent},
		{`"Verify"`, ActionVerify},
		{`"IdentityVerify"`, ActionIdentityVerify},
		{`"AgeVerify"`, ActionAgeVerify},
		{`"FutureAction"`, ActionUndefined},
	}
	for _, c := range cases {
		var got AgeGateAction
		if err := json.Unmarshal([]byte(c.in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("action %s: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestAgeGateStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	if StatusPending.IsTerminal() {
		t.Fatal("Pending must be non-terminal")
	}
	for _, s := range []AgeGateStatus{StatusUndefined, StatusAllowed, StatusBlocked, StatusIdentityVerified, StatusAgeVerified} {
		if !s.IsTerminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
}
