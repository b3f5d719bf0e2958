package main

import "github.com/blogscout/search-api/cmd"

// @title           BlogScout Search API
// @version         1.0.0
// @description     A blog search API fronting the BlogScout index with query history
// @contact.name    API Support
// @contact.url     https://github.com/blogscout/search-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
