package utils

import "testing"

// TestGetPwd tests hashing and verification.
func TestGetPwd(t *testing.T) {
	hash, err := GetPwd("secret123")
	if err != nil {
		t.Fatalf("GetPwd failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPwd("secret123", hash) {
		t.Fatal("CheckPwd should accept the right password")
	}
	if CheckPwd("wrong", hash) {
		t.Fatal("CheckPwd should reject a wrong password")
	}
}
