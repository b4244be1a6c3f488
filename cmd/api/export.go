package main

import (
	"fmt"
	"os"

	"go-warehouse-ws/internal/report"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/service"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current stock list to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}

			products, err := service.NewProductService(repository.NewProductRepo(db), repository.NewTransactionRepo(db), nil, nil, log).
				GetAllProducts(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := report.WriteStockWorkbook(f, products); err != nil {
				f.Close()
				return fmt.Errorf("write workbook: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			log.WithField("products", len(products)).WithField("file", out).Info("Stock exported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "stock.xlsx", "output file")
	return cmd
}
