// @title           adboard API
// @version         1.0
// @description     API доски объявлений с оплатой размещения кредитами (документация Swagger).
// @contact.name    adboard
// @contact.email   support@adboard.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "adboard_backend/internal/app"

func main() {
	app.Run()
}
