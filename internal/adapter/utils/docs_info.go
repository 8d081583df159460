// @title           PDF Summary API
// @version         1.0
// @description     Extracts text from PDFs and office documents and summarizes it with OpenAI, Groq or Gemini.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey  AccessToken
// @in                          header
// @name                        access_token
package utils

//run redis (optional, shares the rate limit between replicas)
//docker run -p 6379:6379 -d redis
//REDIS_ADDR=127.0.0.1:6379

//ocr needs poppler-utils and tesseract-ocr (+ tesseract-ocr-por) on the PATH

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
