// Command rolematch resolves titles, maps headers and runs imports from the
// command line against the same stores as the server.
package main

import "github.com/joho/godotenv"

func main() {
	_ = godotenv.Load()
	Execute()
}
