//go:build ignore

// This script mints an HS256 session token accepted by the API when
// auth.secret is configured.
// Run with: go run scripts/generate-jwt.go -sub user-1 -email alice@example.com

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func main() {
	secret := flag.String("secret", os.Getenv("AUTH_SECRET"), "HMAC secret (defaults to $AUTH_SECRET)")
	sub := flag.String("sub", "", "User id (auth provider subject)")
	email := flag.String("email", "", "Email claim, used to provision the user on first /api/me")
	issuer := flag.String("iss", "", "Issuer claim, must match auth.issuer when set")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if *secret == "" || *sub == "" {
		fmt.Fprintln(os.Stderr, "usage: generate-jwt -secret <secret> -sub <user id> [-email <email>] [-iss <issuer>] [-ttl 24h]")
		os.Exit(2)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": *sub,
		"iat": now.Unix(),
		"exp": now.Add(*ttl).Unix(),
	}
	if *email != "" {
		claims["email"] = *email
	}
	if *issuer != "" {
		claims["iss"] = *issuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(signed)
}
