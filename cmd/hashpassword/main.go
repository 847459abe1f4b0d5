// hashpassword печатает bcrypt хеш пароля для ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ibeloyar/loangateway/pgk/password"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	fmt.Fprint(os.Stderr, "password: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatal(err)
	}

	hash, err := password.HashPassword(strings.TrimRight(line, "\r\n"), *cost)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hash)
}
