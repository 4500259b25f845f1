package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/pointwallet/internal/realtime/ws"
	pb "github.com/mmynk/pointwallet/pkg/proto"
	"github.com/mmynk/pointwallet/pkg/proto/protoconnect"
)

func watchCmd() *cobra.Command {
	var (
		server    string
		token     string
		studentID string
		password  string
	)
	cmd := &cobra.Command{
		Use:   "watch [collection[:id]]...",
		Short: "Stream changes from the realtime feed",
		Long: `Subscribe to collections on the realtime feed and print every change as
one JSON line. A topic is a collection (users, settlements, chats, messages
or requests), optionally followed by ":" and a document ID.

Authenticate with --token, or with --student and --password to log in first.`,
		Example: `  pointctl watch --student 20240001 --password secret settlements chats
  pointctl watch --token $TOKEN settlements:6f1c...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if token == "" {
				if studentID == "" || password == "" {
					return errors.New("either --token or --student and --password are required")
				}
				resp, err := protoconnect.NewAuthServiceClient(http.DefaultClient, server).Login(ctx, connect.NewRequest(&pb.LoginRequest{
					StudentId: studentID,
					Password:  password,
				}))
				if err != nil {
					return fmt.Errorf("login: %w", err)
				}
				token = resp.Msg.GetToken()
			}

			client, err := ws.Dial(ctx, server, token)
			if err != nil {
				return err
			}
			defer client.Close()

			for _, arg := range args {
				collection, id, _ := strings.Cut(arg, ":")
				if _, err := client.Subscribe(collection, id); err != nil {
					return fmt.Errorf("subscribe %s: %w", arg, err)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for {
				select {
				case <-ctx.Done():
					return nil
				case msg, ok := <-client.Events():
					if !ok {
						return errors.New("realtime feed closed")
					}
					if msg.Type == ws.TypeAck || msg.Type == ws.TypePong {
						continue
					}
					if err := enc.Encode(msg); err != nil {
						return err
					}
				}
			}
		},
	}
	cmd.Flags().StringVar(&server, "server", envOr("POINT_SERVER_URL", "http://localhost:8080"), "POINT server URL")
	cmd.Flags().StringVar(&token, "token", os.Getenv("POINT_TOKEN"), "session token")
	cmd.Flags().StringVar(&studentID, "student", "", "student ID to log in with")
	cmd.Flags().StringVar(&password, "password", "", "password to log in with")
	return cmd
}
