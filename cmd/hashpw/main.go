// cmd/hashpw/main.go
//
// hashpw prints the bcrypt hash to use as ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-backend/internal/utils"
)

func main() {
	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logrus.WithError(err).Fatal("Failed to read password from stdin")
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		logrus.Fatal("Usage: hashpw <password>  (or pipe it on stdin)")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to hash password")
	}
	fmt.Println(hash)
}
