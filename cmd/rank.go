package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Abraxas-365/internmatch/pkg/logx"
	"github.com/Abraxas-365/internmatch/recruitment/internship"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipinfra"
	"github.com/Abraxas-365/internmatch/recruitment/internship/internshipsrv"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation"
	"github.com/Abraxas-365/internmatch/recruitment/recommendation/recommendationsrv"
	"github.com/spf13/cobra"
)

var (
	rankProfileFile string
	rankCatalogFile string
	rankLimit       int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the catalog against a candidate profile JSON file",
	Long: `Rank reads a candidate profile from --profile and prints the ranked internships as JSON.
The catalog comes from the configured storage, or only from --catalog when a CSV file is given.
Ranking never writes to storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		candidate, err := readCandidate(rankProfileFile)
		if err != nil {
			return err
		}

		var catalog internship.Catalog
		if rankCatalogFile != "" {
			catalog, err = loadCSVCatalog(cmd.Context(), rankCatalogFile)
			if err != nil {
				return err
			}
		} else {
			container, err := NewContainer(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer container.Close()
			catalog = container.InternshipRepo
		}

		resp, err := recommendationsrv.NewService(catalog, nil).Recommend(cmd.Context(), candidate, rankLimit)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

// loadCSVCatalog reads a CSV catalog into a private in-memory repository
func loadCSVCatalog(ctx context.Context, path string) (internship.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	repo := internshipinfra.NewMemoryInternshipRepository()
	result, err := internshipsrv.NewInternshipService(repo).ImportCSV(ctx, f)
	if err != nil {
		return nil, err
	}
	if result.Skipped > 0 {
		logx.Warnf("Skipped %d catalog rows from %s", result.Skipped, path)
	}
	return repo, nil
}

func init() {
	rankCmd.Flags().StringVarP(&rankProfileFile, "profile", "p", "", "candidate profile JSON file")
	rankCmd.Flags().StringVar(&rankCatalogFile, "catalog", "", "rank this CSV catalog instead of the configured storage")
	rankCmd.Flags().IntVarP(&rankLimit, "limit", "n", 0, "maximum results (0 = all)")
	_ = rankCmd.MarkFlagRequired("profile")
}

func readCandidate(path string) (recommendation.CandidateProfile, error) {
	var candidate recommendation.CandidateProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return candidate, fmt.Errorf("read profile: %w", err)
	}
	if err := json.Unmarshal(data, &candidate); err != nil {
		return candidate, fmt.Errorf("decode profile %s: %w", path, err)
	}
	return candidate, nil
}
