package main

import "github.com/zhmaterial/material-api/cmd"

// @title           Material Search API
// @version         1.0.0
// @description     Bilingual stock media search API with Chinese query translation and demo fallback
// @contact.name    API Support
// @contact.url     https://github.com/zhmaterial/material-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
