package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/f3rmion/blsagg/bls"
	"github.com/f3rmion/blsagg/bls12377"
	"github.com/f3rmion/blsagg/bls12381"
	"github.com/f3rmion/blsagg/group"
	"github.com/f3rmion/blsagg/hashtogroup"
	"github.com/f3rmion/blsagg/session"
)

var log = logging.Logger("aggregation-time")

const messageSize = 64

// Phase is the timing of one step of a scenario.
type Phase struct {
	Name       string        `json:"name"`
	Total      time.Duration `json:"total_ns"`
	PerMessage time.Duration `json:"per_message_ns,omitempty"` // Zero for single-shot steps
}

// Scenario groups the phases of one run.
type Scenario struct {
	Name   string  `json:"name"`
	Phases []Phase `json:"phases"`
}

// Report is written to the -output file.
type Report struct {
	Curve     string     `json:"curve"`
	Variant   string     `json:"variant"`
	Hasher    string     `json:"hasher"`
	Messages  int        `json:"messages"`
	Seed      uint64     `json:"seed"`
	Scenarios []Scenario `json:"scenarios"`
}

// measure runs f and records its duration under name. When n > 0 the
// average per message is recorded too.
func (sc *Scenario) measure(name string, n int, f func() error) error {
	fmt.Printf("\t%s\n", name)
	start := time.Now()
	err := f()
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	p := Phase{Name: name, Total: elapsed}
	if n > 0 {
		p.PerMessage = elapsed / time.Duration(n)
		fmt.Printf("\t  took %.6fs (%.3fms per message)\n", elapsed.Seconds(), float64(p.PerMessage)/float64(time.Millisecond))
	} else {
		fmt.Printf("\t  took %.6fs\n", elapsed.Seconds())
	}
	sc.Phases = append(sc.Phases, p)
	return nil
}

func main() {
	n := flag.Int("n", 1000, "Number of signers")
	seed := flag.Uint64("seed", 12, "Seed for the ChaCha8 generator")
	curveName := flag.String("curve", "bls12-381", "Curve: bls12-381|bls12-377")
	variantName := flag.String("variant", "min-pk", "Variant: min-pk|min-sig")
	hasherName := flag.String("hasher", "blake2b", "Hash-to-group expander: blake2b|sha256|shake256")
	outputFile := flag.String("output", "aggregation_time.json", "Output file for timing results")
	chartFile := flag.String("chart", "", "Optional HTML file for a bar chart of the results")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	flag.Parse()

	if err := logging.SetLogLevel("*", *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *n < 1 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive, got %d\n", *n)
		os.Exit(1)
	}

	scheme, err := newScheme(*curveName, *variantName, *hasherName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := Report{
		Curve:    *curveName,
		Variant:  *variantName,
		Hasher:   *hasherName,
		Messages: *n,
		Seed:     *seed,
	}

	ctx := context.Background()
	fmt.Printf("dancing with %d messages\n", *n)
	different, err := runDifferentMessages(ctx, scheme, *n, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "different messages: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("dancing with %d signers on one message\n", *n)
	same, err := runSameMessage(scheme, *n, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "same message: %v\n", err)
		os.Exit(1)
	}
	report.Scenarios = []Scenario{*different, *same}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal results: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write results: %v\n", err)
		os.Exit(1)
	}
	log.Infof("results written to %s", *outputFile)

	if *chartFile != "" {
		if err := writeChart(*chartFile, &report); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write chart: %v\n", err)
			os.Exit(1)
		}
		log.Infof("chart written to %s", *chartFile)
	}
}

func newScheme(curveName, variantName, hasherName string) (*bls.Scheme, error) {
	var c group.Pairing
	switch curveName {
	case "bls12-381":
		c = bls12381.New()
	case "bls12-377":
		c = bls12377.New()
	default:
		return nil, fmt.Errorf("unknown curve %q", curveName)
	}

	v, err := bls.ParseVariant(variantName)
	if err != nil {
		return nil, err
	}

	var h hashtogroup.Hasher
	switch hasherName {
	case "blake2b":
		h = &hashtogroup.Blake2bHasher{}
	case "sha256":
		h = &hashtogroup.SHA256Hasher{}
	case "shake256":
		h = &hashtogroup.ShakeHasher{}
	default:
		return nil, fmt.Errorf("unknown hasher %q", hasherName)
	}
	return bls.NewWithHasher(c, v, h)
}

func newRand(seed uint64) *mrand.ChaCha8 {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return mrand.NewChaCha8(s)
}

func generateKeys(s *bls.Scheme, rng *mrand.ChaCha8, n int) ([]*bls.PrivateKey, error) {
	sks := make([]*bls.PrivateKey, n)
	for i := range sks {
		sk, err := s.GenerateKey(rng)
		if err != nil {
			return nil, err
		}
		sks[i] = sk
	}
	return sks, nil
}

func runDifferentMessages(ctx context.Context, s *bls.Scheme, n int, seed uint64) (*Scenario, error) {
	rng := newRand(seed)
	sc := &Scenario{Name: "different messages"}

	sks, err := generateKeys(s, rng, n)
	if err != nil {
		return nil, err
	}
	msgs := make([][]byte, n)
	for i := range msgs {
		msgs[i] = make([]byte, messageSize)
		rng.Read(msgs[i])
	}

	var (
		sigs   []*bls.Signature
		agg    *bls.Signature
		raw    []byte
		hashes []group.Point
		pks    []*bls.PublicKey
	)
	steps := []struct {
		name string
		n    int
		f    func() error
	}{
		{"signing", n, func() (err error) {
			sigs, err = s.SignBatch(ctx, sks, msgs)
			return err
		}},
		{"aggregate signatures", n, func() (err error) {
			agg, err = s.AggregateTree(ctx, sigs)
			return err
		}},
		{"serialize signature", 0, func() error {
			raw = agg.Bytes()
			return nil
		}},
		{"hashing messages", n, func() (err error) {
			hashes, err = s.HashBatch(ctx, msgs)
			return err
		}},
		{"extracting public keys", n, func() (err error) {
			pks, err = s.PublicKeyBatch(ctx, sks)
			return err
		}},
		{"deserialize signature", 0, func() (err error) {
			agg, err = s.SignatureFromBytes(raw)
			return err
		}},
		{"verification", n, func() error {
			ok, err := s.VerifyConcurrent(ctx, agg, hashes, pks)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("aggregate rejected")
			}
			return nil
		}},
		{"verification messages", n, func() error {
			if !s.VerifyDistinctMessages(agg, msgs, pks) {
				return fmt.Errorf("aggregate rejected")
			}
			return nil
		}},
	}
	for _, st := range steps {
		if err := sc.measure(st.name, st.n, st.f); err != nil {
			return nil, err
		}
		log.Debugf("%s: done", st.name)
	}
	return sc, nil
}

// runSameMessage has every signer sign one message. Signers register a
// proof of possession, which is what makes the repeated message safe.
func runSameMessage(s *bls.Scheme, n int, seed uint64) (*Scenario, error) {
	rng := newRand(seed)
	sc := &Scenario{Name: "same message"}

	sks, err := generateKeys(s, rng, n)
	if err != nil {
		return nil, err
	}
	msg := make([]byte, messageSize)
	rng.Read(msg)

	signers := make([]*session.Signer, n)
	for i, sk := range sks {
		signers[i] = session.NewSigner(s, sk)
	}

	var (
		contributions []*session.Contribution
		result        *session.Result
		raw           []byte
	)
	col := session.NewProvenCollector(s)
	steps := []struct {
		name string
		n    int
		f    func() error
	}{
		{"signing", n, func() error {
			contributions = make([]*session.Contribution, n)
			for i, p := range signers {
				contributions[i] = p.Sign(msg)
			}
			return nil
		}},
		{"registering proofs", n, func() error {
			for _, p := range signers {
				if err := col.Register(p.PublicKey(), p.Proof()); err != nil {
					return err
				}
			}
			return nil
		}},
		{"collecting signatures", n, func() error {
			for _, c := range contributions {
				if err := col.AddContribution(c); err != nil {
					return err
				}
			}
			return nil
		}},
		{"aggregate signatures", n, func() (err error) {
			result, err = col.Finalize()
			return err
		}},
		{"serialize signature", 0, func() error {
			raw = result.Signature.Bytes()
			return nil
		}},
		{"deserialize signature", 0, func() (err error) {
			result.Signature, err = s.SignatureFromBytes(raw)
			return err
		}},
		{"verification", n, func() error {
			return session.Verify(s, result)
		}},
	}
	for _, st := range steps {
		if err := sc.measure(st.name, st.n, st.f); err != nil {
			return nil, err
		}
		log.Debugf("%s: done", st.name)
	}
	return sc, nil
}
