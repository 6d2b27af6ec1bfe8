package handlers

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/deepak4044/service_marketplace/configs"
	ws "github.com/deepak4044/service_marketplace/websocket"
)

// ServeWs registers a realtime session for the authenticated user. The token
// comes through the query string because browsers cannot set headers on
// websocket upgrades.
func ServeWs(conn *websocket.Conn) {
	tokenString := conn.Query("token")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		log.Printf("Websocket connection rejected: invalid token")
		conn.Close()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		conn.Close()
		return
	}
	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		conn.Close()
		return
	}

	client := &ws.Client{UserID: userID, Conn: conn}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
