// Package classifier trains and runs the classical emotion classifier:
// a standardising scaler in front of either a one-vs-rest linear SVM or a
// k-nearest-neighbour vote.
package classifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Algorithm string

const (
	AlgorithmSVM Algorithm = "svm"
	AlgorithmKNN Algorithm = "knn"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown classifier algorithm")
	ErrDimension        = errors.New("feature vector has unexpected length")
	ErrNotTrained       = errors.New("classifier is not trained")
	ErrInvalidModel     = errors.New("classifier model is inconsistent")
)

type Options struct {
	Algorithm Algorithm
	// SVM
	Lambda float64
	Epochs int
	// KNN
	K    int
	Seed int64
}

func DefaultOptions(alg Algorithm) Options {
	return Options{
		Algorithm: alg,
		Lambda:    1e-4,
		Epochs:    30,
		K:         5,
		Seed:      42,
	}
}

type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// FitScaler computes per-column mean and population standard deviation.
// Constant columns get a scale of 1.
func FitScaler(X [][]float64) Scaler {
	dim := len(X[0])
	s := Scaler{Mean: make([]float64, dim), Scale: make([]float64, dim)}
	col := make([]float64, len(X))
	for j := 0; j < dim; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		s.Mean[j], s.Scale[j] = mean, std
	}
	return s
}

func (s Scaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	floats.SubTo(out, x, s.Mean)
	floats.Div(out, s.Scale)
	return out
}

type linearSVM struct {
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

type knn struct {
	K int         `json:"k"`
	X [][]float64 `json:"x"`
	Y []int       `json:"y"`
}

type Model struct {
	Algorithm Algorithm  `json:"algorithm"`
	Dim       int        `json:"dim"`
	Classes   []int      `json:"classes"`
	Scaler    Scaler     `json:"scaler"`
	SVM       *linearSVM `json:"svm,omitempty"`
	KNN       *knn       `json:"knn,omitempty"`
}

func Train(ds Dataset, opts Options) (*Model, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	dim := ds.Dim()
	if dim == 0 {
		return nil, fmt.Errorf("%w: samples have no features", ErrDimension)
	}
	if len(ds.Y) != len(ds.X) {
		return nil, fmt.Errorf("%w: %d samples but %d labels", ErrDimension, len(ds.X), len(ds.Y))
	}
	for i, x := range ds.X {
		if len(x) != dim {
			return nil, fmt.Errorf("%w: sample %d has %d features, expected %d", ErrDimension, i, len(x), dim)
		}
	}

	m := &Model{
		Algorithm: opts.Algorithm,
		Dim:       dim,
		Classes:   distinct(ds.Y),
		Scaler:    FitScaler(ds.X),
	}

	X := make([][]float64, ds.Len())
	for i, x := range ds.X {
		X[i] = m.Scaler.Transform(x)
	}

	switch opts.Algorithm {
	case AlgorithmSVM:
		m.SVM = trainSVM(X, ds.Y, m.Classes, opts)
	case AlgorithmKNN:
		k := opts.K
		if k <= 0 {
			k = 1
		}
		m.KNN = &knn{K: k, X: X, Y: append([]int(nil), ds.Y...)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, opts.Algorithm)
	}

	return m, nil
}

// trainSVM fits one hinge-loss separator per class with the Pegasos
// stochastic sub-gradient method. The bias is regularised like the weights.
func trainSVM(X [][]float64, y []int, classes []int, opts Options) *linearSVM {
	rng := rand.New(rand.NewSource(opts.Seed))
	lambda := opts.Lambda
	if lambda <= 0 {
		lambda = 1e-4
	}
	epochs := opts.Epochs
	if epochs <= 0 {
		epochs = 1
	}

	dim := len(X[0])
	svm := &linearSVM{
		Weights: make([][]float64, len(classes)),
		Bias:    make([]float64, len(classes)),
	}

	for ci, class := range classes {
		w := make([]float64, dim)
		b := 0.0
		t := 0
		for e := 0; e < epochs; e++ {
			for _, i := range rng.Perm(len(X)) {
				t++
				eta := 1.0 / (lambda * float64(t))
				target := -1.0
				if y[i] == class {
					target = 1.0
				}
				margin := target * (floats.Dot(w, X[i]) + b)
				floats.Scale(1-eta*lambda, w)
				b *= 1 - eta*lambda
				if margin < 1 {
					floats.AddScaled(w, eta*target, X[i])
					b += eta * target
				}
			}
		}
		svm.Weights[ci] = w
		svm.Bias[ci] = b
	}
	return svm
}

// Predict returns the class of x. Vectors whose length differs from the
// training width are rejected with ErrDimension.
func (m *Model) Predict(x []float64) (int, error) {
	if m == nil || (m.SVM == nil && m.KNN == nil) {
		return 0, ErrNotTrained
	}
	if len(x) != m.Dim {
		return 0, fmt.Errorf("%w: got %d, expected %d", ErrDimension, len(x), m.Dim)
	}
	z := m.Scaler.Transform(x)

	if m.SVM != nil {
		best, bestScore := 0, math.Inf(-1)
		for ci, w := range m.SVM.Weights {
			score := floats.Dot(w, z) + m.SVM.Bias[ci]
			if score > bestScore {
				best, bestScore = ci, score
			}
		}
		return m.Classes[best], nil
	}

	return m.KNN.vote(z), nil
}

func (k *knn) vote(z []float64) int {
	type neighbour struct {
		dist  float64
		class int
	}
	ns := make([]neighbour, len(k.X))
	for i, x := range k.X {
		ns[i] = neighbour{dist: floats.Distance(x, z, 2), class: k.Y[i]}
	}
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].dist < ns[j].dist })

	n := k.K
	if n > len(ns) {
		n = len(ns)
	}
	votes := map[int]int{}
	best, bestVotes := ns[0].class, 0
	for _, nb := range ns[:n] {
		votes[nb.class]++
		if votes[nb.class] > bestVotes {
			best, bestVotes = nb.class, votes[nb.class]
		}
	}
	return best
}

// Accuracy is the fraction of ds predicted correctly.
func (m *Model) Accuracy(ds Dataset) (float64, error) {
	if ds.Len() == 0 {
		return 0, ErrEmptyDataset
	}
	correct := 0
	for i, x := range ds.X {
		got, err := m.Predict(x)
		if err != nil {
			return 0, err
		}
		if got == ds.Y[i] {
			correct++
		}
	}
	return float64(correct) / float64(ds.Len()), nil
}

func (m *Model) Save(path string) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model %s: %w", path, err)
	}
	return nil
}

func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	var m Model
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.SVM == nil && m.KNN == nil {
		return nil, ErrNotTrained
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return &m, nil
}

// validate checks that every stored slice agrees with Dim so Predict cannot
// index out of range on a hand-edited or truncated file.
func (m *Model) validate() error {
	if m.Dim <= 0 {
		return fmt.Errorf("%w: dim %d", ErrInvalidModel, m.Dim)
	}
	if len(m.Scaler.Mean) != m.Dim || len(m.Scaler.Scale) != m.Dim {
		return fmt.Errorf("%w: scaler has %d/%d columns, expected %d",
			ErrInvalidModel, len(m.Scaler.Mean), len(m.Scaler.Scale), m.Dim)
	}
	for j, s := range m.Scaler.Scale {
		if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: scaler column %d has scale %v", ErrInvalidModel, j, s)
		}
	}

	switch {
	case m.SVM != nil:
		if len(m.Classes) == 0 || len(m.SVM.Weights) != len(m.Classes) || len(m.SVM.Bias) != len(m.Classes) {
			return fmt.Errorf("%w: svm has %d weight rows and %d biases for %d classes",
				ErrInvalidModel, len(m.SVM.Weights), len(m.SVM.Bias), len(m.Classes))
		}
		for i, w := range m.SVM.Weights {
			if len(w) != m.Dim {
				return fmt.Errorf("%w: svm weight row %d has %d values, expected %d", ErrInvalidModel, i, len(w), m.Dim)
			}
		}
	case m.KNN != nil:
		if m.KNN.K < 1 {
			return fmt.Errorf("%w: knn k is %d", ErrInvalidModel, m.KNN.K)
		}
		if len(m.KNN.X) == 0 || len(m.KNN.X) != len(m.KNN.Y) {
			return fmt.Errorf("%w: knn has %d samples and %d labels", ErrInvalidModel, len(m.KNN.X), len(m.KNN.Y))
		}
		for i, x := range m.KNN.X {
			if len(x) != m.Dim {
				return fmt.Errorf("%w: knn sample %d has %d values, expected %d", ErrInvalidModel, i, len(x), m.Dim)
			}
		}
	}
	return nil
}

func distinct(ys []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, y := range ys {
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.Ints(out)
	return out
}
