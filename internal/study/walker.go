package study

import (
	"fmt"
	"os"
	"path/filepath"
)

// Walk enumerates the experiment grid under root: dataset, wl method,
// evaluator and acquisition function directories, then the fold directories of
// each condition. Anything that is not a directory is ignored. Entries are
// visited in lexical order.
func Walk(root string) ([]Experiment, error) {
	datasets, err := subdirs(root)
	if err != nil {
		return nil, fmt.Errorf("list study root: %w", err)
	}

	var experiments []Experiment
	for _, dataset := range datasets {
		datasetDir := filepath.Join(root, dataset)
		wlMethods, err := subdirs(datasetDir)
		if err != nil {
			return nil, err
		}

		for _, wl := range wlMethods {
			wlDir := filepath.Join(datasetDir, wl)
			evaluators, err := subdirs(wlDir)
			if err != nil {
				return nil, err
			}

			for _, evaluator := range evaluators {
				evalDir := filepath.Join(wlDir, evaluator)
				acqs, err := subdirs(evalDir)
				if err != nil {
					return nil, err
				}

				for _, acq := range acqs {
					folds, err := subdirs(filepath.Join(evalDir, acq))
					if err != nil {
						return nil, err
					}
					experiments = append(experiments, Experiment{
						Condition: Condition{
							Dataset:     dataset,
							WlMethod:    wl,
							Evaluator:   evaluator,
							Acquisition: acq,
						},
						Folds: folds,
					})
				}
			}
		}
	}

	return experiments, nil
}

// subdirs lists the directory names in dir, sorted. Symlinks to directories
// count as directories.
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, e.Name())); err == nil && info.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	return names, nil
}
