package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/mmynk/pointwallet/internal/config"
	"github.com/mmynk/pointwallet/internal/storage"
)

// Graph answers friend-of-friend queries. The document store stays the
// source of truth for friend lists; a Graph may mirror them.
type Graph interface {
	Link(ctx context.Context, userID, friendID string) error
	Unlink(ctx context.Context, userID, friendID string) error
	// Suggest returns user IDs ordered by the number of mutual friends.
	Suggest(ctx context.Context, userID string, limit int) ([]string, error)
	Close(ctx context.Context) error
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")

// storeGraph answers suggestions straight from the document store.
type storeGraph struct {
	users storage.UserStore
}

// NewStoreGraph returns a Graph backed by the document store's friend lists.
func NewStoreGraph(users storage.UserStore) Graph {
	return &storeGraph{users: users}
}

func (g *storeGraph) Link(context.Context, string, string) error   { return nil }
func (g *storeGraph) Unlink(context.Context, string, string) error { return nil }
func (g *storeGraph) Close(context.Context) error                  { return nil }

func (g *storeGraph) Suggest(ctx context.Context, userID string, limit int) ([]string, error) {
	users, err := g.users.SuggestFriends(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Runner executes Cypher statements.
type Runner interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	Close(ctx context.Context) error
}

const (
	linkCypher = `MERGE (a:User {id: $user})
MERGE (b:User {id: $friend})
MERGE (a)-[:FRIEND]->(b)`

	unlinkCypher = `MATCH (:User {id: $user})-[r:FRIEND]->(:User {id: $friend}) DELETE r`

	suggestCypher = `MATCH (me:User {id: $user})-[:FRIEND]->(:User)-[:FRIEND]->(s:User)
WHERE s <> me AND NOT (me)-[:FRIEND]->(s)
RETURN s.id AS id, count(*) AS mutual
ORDER BY mutual DESC, id
LIMIT $limit`
)

// cypherGraph mirrors friend edges into a Neo4j compatible graph.
type cypherGraph struct {
	runner Runner
}

// NewCypherGraph returns a Graph issuing Cypher through runner.
func NewCypherGraph(runner Runner) Graph {
	return &cypherGraph{runner: runner}
}

func (g *cypherGraph) Link(ctx context.Context, userID, friendID string) error {
	_, err := g.runner.ExecuteWrite(ctx, linkCypher, map[string]any{"user": userID, "friend": friendID})
	return err
}

func (g *cypherGraph) Unlink(ctx context.Context, userID, friendID string) error {
	_, err := g.runner.ExecuteWrite(ctx, unlinkCypher, map[string]any{"user": userID, "friend": friendID})
	return err
}

func (g *cypherGraph) Suggest(ctx context.Context, userID string, limit int) ([]string, error) {
	records, err := g.runner.ExecuteRead(ctx, suggestCypher, map[string]any{"user": userID, "limit": int64(limit)})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		id, ok := rec["id"].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected suggestion record %v", rec)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (g *cypherGraph) Close(ctx context.Context) error {
	return g.runner.Close(ctx)
}

// NewNeo4jRunner establishes a Bolt connection using the official Neo4j driver.
func NewNeo4jRunner(ctx context.Context, cfg config.GraphConfig) (Runner, error) {
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify graph connectivity: %w", err)
	}
	return &neo4jRunner{driver: driver, database: cfg.Database}, nil
}

type neo4jRunner struct {
	driver   neo4j.DriverWithContext
	database string
}

func (r *neo4jRunner) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	return r.run(ctx, neo4j.AccessModeWrite, cypher, params)
}

func (r *neo4jRunner) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	return r.run(ctx, neo4j.AccessModeRead, cypher, params)
}

func (r *neo4jRunner) run(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) ([]Record, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: r.database,
		AccessMode:   mode,
	})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	for res.Next(ctx) {
		rec := res.Record()
		record := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			value, _ := rec.Get(key)
			record[key] = value
		}
		records = append(records, record)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *neo4jRunner) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}
