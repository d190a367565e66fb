package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"agroflow-backend/pkg/contactform"
	"agroflow-backend/pkg/i18n"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	baseURL string
	lang    string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "contactctl",
		Short:         "Submit and check the AgroFlow contact form from the terminal",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "backend base URL")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "pt", "form language (pt or en)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 40*time.Second, "request timeout")

	root.AddCommand(newSendCmd(opts), newHealthCmd(opts))
	return root
}

func newSendCmd(opts *rootOptions) *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Validate and submit a contact message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang := i18n.Parse(opts.lang)
			form, err := contactform.New(opts.baseURL, lang, contactform.WithHTTPClient(&http.Client{Timeout: opts.timeout}))
			if err != nil {
				return err
			}

			for field, value := range map[contactform.Field]string{
				contactform.FieldName:    name,
				contactform.FieldEmail:   email,
				contactform.FieldMessage: message,
			} {
				if err := form.UpdateField(field, value); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, i18n.Translate(i18n.KeyClientSending, lang))

			fb, err := form.Submit(ctx)
			switch {
			case errors.Is(err, contactform.ErrInvalid):
				errs := form.Errors()
				fields := make([]string, 0, len(errs))
				for f := range errs {
					fields = append(fields, f)
				}
				sort.Strings(fields)
				for _, f := range fields {
					fmt.Fprintf(out, "  %s: %s\n", f, errs[f])
				}
				return err
			case errors.Is(err, contactform.ErrBusy):
				return errors.New(i18n.Translate(i18n.KeyClientBusy, lang))
			}

			fmt.Fprintln(out, fb.Message)
			if !fb.Success {
				return fmt.Errorf("submission failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "sender name")
	cmd.Flags().StringVar(&email, "email", "", "sender email address")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	return cmd
}

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the backend SMTP configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(opts.baseURL, "/")+"/api/contact", nil)
			if err != nil {
				return err
			}
			req.Header.Set("Accept-Language", i18n.Parse(opts.lang).String())

			res, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("health: %w", err)
			}
			defer res.Body.Close()

			var body struct {
				Status  string `json:"status"`
				Message string `json:"message"`
				Error   string `json:"error"`
			}
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				return fmt.Errorf("health: decode response: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", body.Status, body.Message)
			if body.Error != "" {
				fmt.Fprintf(out, "error: %s\n", body.Error)
			}
			if res.StatusCode != http.StatusOK {
				return fmt.Errorf("health: status %d", res.StatusCode)
			}
			return nil
		},
	}
}
