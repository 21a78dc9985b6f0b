// Package mongodb maneja el ciclo de vida del cliente de MongoDB: se crea al
// arrancar, lo comparten los repos y se cierra al apagar.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	// Si URI está seteada, gana. Si no, se arma con los campos de abajo.
	URI string

	User     string
	Password string
	Host     string
	// SRV usa el esquema mongodb+srv (clusters de Atlas).
	SRV bool

	Database string
	Timeout  time.Duration
}

// ConnectionURI devuelve la URI a la que conecta Open.
func (c Config) ConnectionURI() (string, error) {
	if uri := strings.TrimSpace(c.URI); uri != "" {
		return uri, nil
	}
	host := strings.TrimSpace(c.Host)
	if host == "" {
		return "", errors.New("mongodb: uri or host required")
	}

	u := url.URL{
		Scheme:   "mongodb",
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	if c.SRV {
		u.Scheme = "mongodb+srv"
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String(), nil
}

// Open conecta con la server API v1 estable y hace ping al primario.
func Open(ctx context.Context, cfg Config) (*mongo.Client, error) {
	uri, err := cfg.ConnectionURI()
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}
	return client, nil
}
