package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/auth"
	"github.com/umalmyha/clientes/internal/config"
)

type issueCfg struct {
	PrivateKeyFile string        `env:"AUTH_JWT_PRIVATE_KEY_FILE" envDefault:"private.pem"`
	Issuer         string        `env:"AUTH_JWT_ISSUER" envDefault:"clientes-api"`
	TimeToLive     time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"12h"`
}

func main() {
	subject := flag.String("sub", "operator", "token subject")
	keygen := flag.String("keygen", "", "write new Ed25519 key pair into directory and exit")
	flag.Parse()

	if *keygen != "" {
		if err := generateKeys(*keygen); err != nil {
			logrus.Fatal(err)
		}
		logrus.Infof("key pair written to %s", *keygen)
		return
	}

	if err := config.LoadDotEnv(); err != nil {
		logrus.Fatal(err)
	}

	var cfg issueCfg
	if err := env.Parse(&cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		logrus.Fatalf("failed to parse environment variables - %s", err)
	}

	key, err := auth.LoadPrivateKey(cfg.PrivateKeyFile)
	if err != nil {
		logrus.Fatal(err)
	}

	tkn, err := auth.NewJwtIssuer(cfg.Issuer, cfg.TimeToLive, key).Sign(*subject, time.Now())
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.Infof("token expires at %s", time.Unix(tkn.ExpiresAt, 0).Format(time.RFC3339))
	fmt.Println(tkn.Signed)
}

func generateKeys(dir string) error {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("failed to generate key pair - %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return fmt.Errorf("failed to marshal private key - %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return fmt.Errorf("failed to marshal public key - %w", err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create key directory - %w", err)
	}

	if err := writePEM(filepath.Join(dir, "private.pem"), "PRIVATE KEY", privDER, 0o600); err != nil {
		return err
	}
	return writePEM(filepath.Join(dir, "public.pem"), "PUBLIC KEY", pubDER, 0o644)
}

func writePEM(path, blockType string, der []byte, perm os.FileMode) error {
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s - %w", path, err)
	}
	return nil
}
