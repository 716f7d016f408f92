package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dharmasatrya/flightbooking/internal/booking"
	"github.com/dharmasatrya/flightbooking/internal/catalog"
	"github.com/dharmasatrya/flightbooking/internal/models"
)

var (
	lookupReference string
	lookupLastName  string
)

// lookupCmd searches the sample bookings shipped with the catalog.
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find bookings by reference and passenger last name",
	Example: `  flightbooking lookup --reference AB
  flightbooking lookup --last-name smith`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flights, err := catalog.New(catalog.Config{})
		if err != nil {
			return err
		}
		repo, err := booking.NewSeededRepository(flights)
		if err != nil {
			return err
		}

		records, err := repo.Find(cmd.Context(), booking.Query{
			Reference: lookupReference,
			LastName:  lookupLastName,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(models.BookingLookupResponse{Bookings: records, Total: len(records)})
	},
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupReference, "reference", "r", "", "booking reference, or part of one")
	lookupCmd.Flags().StringVarP(&lookupLastName, "last-name", "l", "", "passenger last name, or part of one")
}
