package password

import "testing"

func TestIsAcceptable(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"Abcdef1!", true},
		{"abcdefg1!", false}, // no uppercase
		{"Abcdefgh", false},  // no digit, no special
		{"A1!aaaaa", true},
		{"A1!aaaa", false},    // 7 characters
		{"ABCDEFG1", false},   // no special
		{"Passw0rd!", true},
		{"@Admin123", true},   // the bootstrap password must pass
		{"Under_score1", true}, // underscore counts as special
		{"Пароль1!", true},     // non-ASCII uppercase still counts
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := IsAcceptable(tt.password); got != tt.want {
				t.Errorf("IsAcceptable(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestHashVerify(t *testing.T) {
	hash, err := Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "Passw0rd!" {
		t.Fatal("Hash returned the plaintext")
	}

	if !Verify(hash, "Passw0rd!") {
		t.Error("Verify rejected the correct password")
	}
	if Verify(hash, "Passw0rd?") {
		t.Error("Verify accepted a wrong password")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	a, err := Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash("Passw0rd!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical, salt is not applied")
	}
}
