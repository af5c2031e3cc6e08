package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/classifier"
	"github.com/spf13/cobra"
)

type trainFlags struct {
	data      string
	out       string
	algorithm string
	testSplit float64
	seed      int64
	k         int
	epochs    int
	lambda    float64
}

func newTrainCmd() *cobra.Command {
	f := &trainFlags{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the classical emotion classifier.",
		Long: `Train the classical emotion classifier from a CSV of feature vectors.

Each row holds the features followed by an integer class id in the last
column. The samples are standardised, split into train and test sets,
fitted with the chosen algorithm and saved as JSON for the server's
CLASSIFIER_MODEL_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.data, "data", "d", "", "training CSV (features..., label)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "./models/emotion_classifier.json", "where to write the trained model")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", string(classifier.AlgorithmSVM), "svm or knn")
	cmd.Flags().Float64Var(&f.testSplit, "test-split", 0.2, "fraction of samples held out for accuracy")
	cmd.Flags().Int64Var(&f.seed, "seed", 42, "shuffle and training seed")
	cmd.Flags().IntVar(&f.k, "k", 5, "neighbours for knn")
	cmd.Flags().IntVar(&f.epochs, "epochs", 30, "passes over the data for svm")
	cmd.Flags().Float64Var(&f.lambda, "lambda", 1e-4, "svm regularisation")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runTrain(cmd *cobra.Command, f *trainFlags) error {
	if f.testSplit <= 0 || f.testSplit >= 1 {
		return fmt.Errorf("test-split must be between 0 and 1, got %v", f.testSplit)
	}

	file, err := os.Open(f.data)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = file.Close() }()

	ds, err := classifier.LoadCSV(file)
	if err != nil {
		return err
	}
	if ds.Len() < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", ds.Len())
	}

	train, test := ds.Split(f.testSplit, f.seed)
	cmd.Printf("Loaded %d samples with %d features (%d train / %d test)\n", ds.Len(), ds.Dim(), train.Len(), test.Len())

	opts := classifier.DefaultOptions(classifier.Algorithm(f.algorithm))
	opts.Seed = f.seed
	opts.K = f.k
	opts.Epochs = f.epochs
	opts.Lambda = f.lambda

	model, err := classifier.Train(train, opts)
	if err != nil {
		return err
	}

	if test.Len() > 0 {
		acc, err := model.Accuracy(test)
		if err != nil {
			return err
		}
		cmd.Printf("Test accuracy: %.4f\n", acc)
	}

	if err := os.MkdirAll(filepath.Dir(f.out), 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	if err := model.Save(f.out); err != nil {
		return err
	}
	cmd.Printf("Model saved to %s\n", f.out)
	return nil
}

func main() {
	if err := newTrainCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
