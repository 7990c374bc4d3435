package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/craole-cc/wallter/pkg/nightlight"
)

func newNightlightCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nightlight",
		Short: "Control the Windows Night Light blue-light filter",
	}

	svc := nightlight.NewService(nil)

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether Night Light is on",
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := svc.IsEnabled()
			if err != nil {
				return describeNightlightErr(err)
			}
			if enabled {
				cmd.Println("Night Light is ON")
			} else {
				cmd.Println("Night Light is OFF")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "on",
		Short: "Force Night Light on",
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := svc.Enable()
			if err != nil {
				return describeNightlightErr(err)
			}
			if changed {
				cmd.Println("Night Light turned ON")
			} else {
				cmd.Println("Night Light was already ON")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "off",
		Short: "Turn Night Light off",
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := svc.Disable()
			if err != nil {
				return describeNightlightErr(err)
			}
			if changed {
				cmd.Println("Night Light turned OFF")
			} else {
				cmd.Println("Night Light was already OFF")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip the Night Light state",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, enabled, err := svc.Toggle()
			if err != nil {
				return describeNightlightErr(err)
			}
			if enabled {
				cmd.Println("Night Light toggled ON")
			} else {
				cmd.Println("Night Light toggled OFF")
			}
			return nil
		},
	})

	return cmd
}

// describeNightlightErr attaches a hint to the common first-run failure while
// keeping the underlying error reachable for errors.Is.
func describeNightlightErr(err error) error {
	if errors.Is(err, nightlight.ErrNotFound) {
		return fmt.Errorf("toggle Night Light once in Windows Settings to initialize it: %w", err)
	}
	return err
}
