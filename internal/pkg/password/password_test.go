package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !Verify("s3cret", digest) {
		t.Fatalf("Verify rejected the original plaintext")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	digest, err := Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if Verify("wrong", digest) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestVerify_GarbageDigest(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("Verify accepted a garbage digest")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	first, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two digests of the same plaintext must differ")
	}
	if !Verify("same-input", first) || !Verify("same-input", second) {
		t.Fatalf("both digests must verify against the plaintext")
	}
}
