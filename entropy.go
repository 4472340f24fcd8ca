package tlswire

import (
	"crypto/aes"
	"crypto/cipher"
	crand "crypto/rand"
	"io"
	"math/rand/v2"
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Hello randoms and session ids draw from a userspace CSPRNG instead
// of hitting the kernel for every message: an AES permutation where
// the CPU has AES instructions, ChaCha8 elsewhere. Both reseed from
// crypto/rand after a fixed number of reads.

const reseedAfter = 1 << 22

var entropy io.Reader = newEntropy()

func hasAESHardware() bool {
	return cpu.X86.HasAES && cpu.X86.HasSSE41 && cpu.X86.HasSSSE3 ||
		cpu.ARM64.HasAES ||
		cpu.S390X.HasAES ||
		runtime.GOARCH == "ppc64" || runtime.GOARCH == "ppc64le"
}

func newEntropy() io.Reader {
	if hasAESHardware() {
		return newAESRand()
	}
	return newChachaRand()
}

// SetEntropy overrides the randomness source, typically with a
// deterministic reader in tests. Not safe to call while other
// goroutines are building messages.
func SetEntropy(r io.Reader) { entropy = r }

func fillRand(p []byte) {
	if len(p) == 0 {
		return
	}
	io.ReadFull(entropy, p)
}

// aesRand iterates a keyed AES permutation over a 16-byte state.
type aesRand struct {
	mu    sync.Mutex
	block cipher.Block
	state [16]byte
	reads uint64
}

func newAESRand() *aesRand {
	r := new(aesRand)
	r.rekey()
	return r
}

func (r *aesRand) rekey() {
	var key [16]byte
	io.ReadFull(crand.Reader, key[:])
	io.ReadFull(crand.Reader, r.state[:])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	r.block = block
	r.reads = 0
}

func (r *aesRand) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reads >= reseedAfter {
		r.rekey()
	}
	r.reads++

	n := 0
	for n < len(p) {
		r.block.Encrypt(r.state[:], r.state[:])
		n += copy(p[n:], r.state[:])
	}
	return len(p), nil
}

type chachaRand struct {
	mu    sync.Mutex
	src   *rand.ChaCha8
	reads uint64
}

func newChachaRand() *chachaRand {
	r := new(chachaRand)
	r.reseed()
	return r
}

func (r *chachaRand) reseed() {
	var seed [32]byte
	io.ReadFull(crand.Reader, seed[:])
	if r.src == nil {
		r.src = rand.NewChaCha8(seed)
	} else {
		r.src.Seed(seed)
	}
	r.reads = 0
}

func (r *chachaRand) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reads >= reseedAfter {
		r.reseed()
	}
	r.reads++
	return r.src.Read(p)
}
