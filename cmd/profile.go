// -- cmd/profile.go --
package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/observability"
	"github.com/xkilldash9x/formpilot-cli/internal/profile"
)

// newProfileCmd groups the profile management subcommands.
func newProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved fill profiles",
	}
	profileCmd.AddCommand(
		newProfileListCmd(),
		newProfileShowCmd(),
		newProfileCreateCmd(),
		newProfileEditCmd(),
		newProfileActivateCmd(),
		newProfileDeleteCmd(),
		newProfileCustomDelCmd(),
	)
	return profileCmd
}

func openStore() (*profile.Store, error) {
	return profile.Open(appCfg.ProfilesCfg.Path, observability.GetLogger())
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			profiles, err := store.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tACTIVE\tEMAIL")
			for _, p := range profiles {
				active := ""
				if p.IsActive {
					active = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.DisplayName, active, p.Email)
			}
			return tw.Flush()
		},
	}
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one profile as JSON (default: the active profile)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var p *schemas.Profile
			if len(args) == 1 {
				p, err = store.GetProfile(cmd.Context(), args[0])
			} else {
				p, err = store.ActiveProfile(cmd.Context())
			}
			if err != nil {
				return err
			}

			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		},
	}
}

// profileFlags registers the shared attribute flags for create and edit.
func profileFlags(cmd *cobra.Command, p *profileInput) {
	cmd.Flags().StringVar(&p.fullName, "full-name", "", "person's full name")
	cmd.Flags().StringVar(&p.email, "email", "", "email address")
	cmd.Flags().StringVar(&p.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&p.address, "address", "", "street address")
	cmd.Flags().StringVar(&p.company, "company", "", "company name")
	cmd.Flags().StringVar(&p.jobTitle, "job-title", "", "job title")
	cmd.Flags().StringVar(&p.bio, "bio", "", "free-form bio used for long answers")
	cmd.Flags().StringArrayVar(&p.custom, "custom", nil, "custom field as Name=Value (repeatable)")
}

type profileInput struct {
	fullName, email, phone, address, company, jobTitle, bio string
	custom                                                  []string
}

// apply copies the provided flags onto p. Only flags the user set change
// existing values, so edit does not blank untouched attributes.
func (in *profileInput) apply(cmd *cobra.Command, p *schemas.Profile) error {
	set := map[string]*string{
		"full-name": &in.fullName,
		"email":     &in.email,
		"phone":     &in.phone,
		"address":   &in.address,
		"company":   &in.company,
		"job-title": &in.jobTitle,
		"bio":       &in.bio,
	}
	dst := map[string]*string{
		"full-name": &p.Name,
		"email":     &p.Email,
		"phone":     &p.Phone,
		"address":   &p.Address,
		"company":   &p.Company,
		"job-title": &p.JobTitle,
		"bio":       &p.Bio,
	}
	for name, src := range set {
		if cmd.Flags().Changed(name) {
			*dst[name] = *src
		}
	}
	for _, c := range in.custom {
		name, value, ok := strings.Cut(c, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("invalid --custom value %q, want Name=Value", c)
		}
		p.SetCustomField(schemas.CustomField{Name: strings.TrimSpace(name), Value: value, Type: "text"})
	}
	return nil
}

func newProfileCreateCmd() *cobra.Command {
	var in profileInput
	var activate bool

	cmd := &cobra.Command{
		Use:   "create [display name]",
		Short: "Create a new profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p := &schemas.Profile{DisplayName: args[0], IsActive: activate}
			if err := in.apply(cmd, p); err != nil {
				return err
			}
			if err := store.SaveProfile(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Created profile %s (%s)\n", p.DisplayName, p.ID)
			return nil
		},
	}
	profileFlags(cmd, &in)
	cmd.Flags().BoolVar(&activate, "activate", false, "make this the active profile")
	return cmd
}

func newProfileEditCmd() *cobra.Command {
	var in profileInput

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Update attributes of an existing profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := in.apply(cmd, p); err != nil {
				return err
			}
			if err := store.SaveProfile(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Updated profile %s (%s)\n", p.DisplayName, p.ID)
			return nil
		},
	}
	profileFlags(cmd, &in)
	return cmd
}

func newProfileCustomDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "custom-del [id] [field name]",
		Short: "Remove a custom field from a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !p.RemoveCustomField(args[1]) {
				return fmt.Errorf("profile %s has no custom field %q", args[0], args[1])
			}
			if err := store.SaveProfile(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Removed custom field %q from %s\n", args[1], p.DisplayName)
			return nil
		},
	}
}

func newProfileActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate [id]",
		Short: "Make the given profile active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SetActive(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Profile %s is now active\n", args[0])
			return nil
		},
	}
}

func newProfileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a profile (the last profile cannot be deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteProfile(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted profile %s\n", args[0])
			return nil
		},
	}
}
