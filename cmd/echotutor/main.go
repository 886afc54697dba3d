package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/miracles123-max/echo-tutor/client"
	"github.com/miracles123-max/echo-tutor/internal/config"
)

type rootOpts struct {
	baseURL string
	debug   bool
	timeout time.Duration
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "echotutor",
		Short:         "Command-line client for the echo-tutor backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.Init()
			if !cmd.Flags().Changed("base-url") {
				opts.baseURL = cfg.BaseURL
			}
			if opts.debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Str("base_url", opts.baseURL).Msg("debug logging enabled")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", client.DefaultConfig().BaseURL, "Base URL of the echo-tutor backend (env ECHO_TUTOR_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Dump HTTP traffic and enable debug logs")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Per-command timeout")

	rootCmd.AddCommand(newUploadCmd(opts))
	rootCmd.AddCommand(newCurrentCmd(opts))
	rootCmd.AddCommand(newAnswerCmd(opts))
	rootCmd.AddCommand(newNextCmd(opts))
	rootCmd.AddCommand(newAudioURLCmd(opts))

	return rootCmd
}

func (o *rootOpts) newClient() *client.Client {
	return client.New(client.Config{
		BaseURL:     o.baseURL,
		HTTPTimeout: o.timeout,
	}, client.WithDebugLogging(o.debug))
}

// run issues one call and prints the response body to out.
func (o *rootOpts) run(cmd *cobra.Command, op string, call func(context.Context, *client.Client) *client.Pending) error {
	c := o.newClient()
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	start := time.Now()
	resp, err := call(ctx, c).Await(ctx)
	elapsed := time.Since(start)
	if err != nil {
		ev := log.Error().Err(err).Str("op", op).Dur("elapsed", elapsed)
		if code := client.StatusCode(err); code != 0 {
			ev = ev.Int("status", code)
		}
		ev.Msg("request failed")
		if d := client.Detail(err); d != "" {
			return fmt.Errorf("%s: %s", op, d)
		}
		return err
	}
	log.Debug().Str("op", op).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("request completed")
	return printBody(cmd.OutOrStdout(), resp.Body)
}

func printBody(w io.Writer, body []byte) error {
	var buf bytes.Buffer
	if json.Indent(&buf, body, "", "  ") != nil {
		buf.Reset()
		buf.Write(body)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func newUploadCmd(o *rootOpts) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a document or image and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "upload", func(ctx context.Context, c *client.Client) *client.Pending {
				return c.UploadPath(ctx, file)
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path of the file to upload")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCurrentCmd(o *rootOpts) *cobra.Command {
	var fileID string
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the current section of a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "current", func(ctx context.Context, c *client.Client) *client.Pending {
				return c.GetCurrentSection(ctx, fileID)
			})
		},
	}
	cmd.Flags().StringVar(&fileID, "file-id", "", "Session file ID")
	_ = cmd.MarkFlagRequired("file-id")
	return cmd
}

func newAnswerCmd(o *rootOpts) *cobra.Command {
	var fileID, questionID, text string
	var choices []string
	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Submit an answer for a question in the current section",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (text == "") == (len(choices) == 0) {
				return fmt.Errorf("exactly one of --answer or --choice is required")
			}
			answer := client.TextAnswer(text)
			if len(choices) > 0 {
				answer = client.ChoicesAnswer(choices...)
			}
			return o.run(cmd, "answer", func(ctx context.Context, c *client.Client) *client.Pending {
				return c.SubmitAnswer(ctx, fileID, client.QuestionID(questionID), answer)
			})
		},
	}
	cmd.Flags().StringVar(&fileID, "file-id", "", "Session file ID")
	cmd.Flags().StringVar(&questionID, "question-id", "", "Question ID")
	cmd.Flags().StringVar(&text, "answer", "", "Answer text")
	cmd.Flags().StringArrayVar(&choices, "choice", nil, "Selected option (repeatable)")
	_ = cmd.MarkFlagRequired("file-id")
	_ = cmd.MarkFlagRequired("question-id")
	return cmd
}

func newNextCmd(o *rootOpts) *cobra.Command {
	var fileID string
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Advance a session to its next section",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, "next", func(ctx context.Context, c *client.Client) *client.Pending {
				return c.NextSection(ctx, fileID)
			})
		},
	}
	cmd.Flags().StringVar(&fileID, "file-id", "", "Session file ID")
	_ = cmd.MarkFlagRequired("file-id")
	return cmd
}

func newAudioURLCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "audio-url <filename>",
		Short: "Print the playback URL for an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := o.newClient()
			defer func() { _ = c.Close() }()
			_, err := fmt.Fprintln(cmd.OutOrStdout(), c.AudioURL(args[0]))
			return err
		},
	}
}
