package main

import (
	"cardbot-server/internal/config"
	"cardbot-server/pkg/token"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/synacor/argon2id"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

// keyLength is the length of a generated controller key
const keyLength = 24

var keyHash = flag.Bool("key-hash", false, "prompt for a controller key and print its argon2id hash")
var generateKey = flag.Bool("generate-key", false, "print a new random controller key and its argon2id hash")

func main() {
	flag.Parse()

	if *generateKey {
		key, err := token.Generate(keyLength)
		if err != nil {
			logrus.WithError(err).Fatal("could not generate key")
		}

		hash, err := argon2id.DefaultHashPassword(key)
		if err != nil {
			logrus.WithError(err).Fatal("could not hash key")
		}

		fmt.Printf("key:  %s\nhash: %s\n", key, hash)
		return
	}

	if *keyHash {
		key := getKey()
		if key == "" {
			os.Exit(1)
		}

		hash, err := argon2id.DefaultHashPassword(key)
		if err != nil {
			logrus.WithError(err).Fatal("could not hash key")
		}

		fmt.Println(hash)
		return
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}

func getKey() string {
	for {
		fmt.Print("Controller key: ")
		keyBytes, err := term.ReadPassword(0)
		if err != nil {
			logrus.WithError(err).Fatal("could not read key")
		}
		fmt.Println("")

		key := strings.TrimRight(string(keyBytes), "\r\n")

		if key == "" {
			return ""
		}

		if len(key) < 6 {
			_, _ = fmt.Fprintf(os.Stderr, "key must be 6 or more characters\n")
			continue
		}

		return key
	}
}
