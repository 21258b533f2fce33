// Package stream delivers live trade prices from the alpaca v2 data stream.
package stream

import (
	"encoding/json"
	"os"
	"time"

	"github.com/buger/jsonparser"
	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const url = "wss://stream.data.alpaca.markets/v2/iex"

func subscribeMessages(symbol string) [][]byte {
	// auth
	auth, _ := json.Marshal(Auth{
		Action: "auth",
		Key:    os.Getenv("APCA_API_KEY_ID"),
		Secret: os.Getenv("APCA_API_SECRET_KEY"),
	})
	// subscribe to trades for the one symbol
	sub, _ := json.Marshal(Subscribe{
		Action: "subscribe",
		Trades: []string{symbol},
	})
	return [][]byte{auth, sub}
}

// handle extracts trade prices for symbol from one stream payload. Data
// messages arrive as JSON arrays; anything that is not a trade is skipped.
func handle(payload []byte, symbol string, prices chan<- float64) {
	jsonparser.ArrayEach(payload, func(msg []byte, _ jsonparser.ValueType, _ int, _ error) {
		kind, _ := jsonparser.GetString(msg, "T")
		if kind != "t" {
			if kind == "error" {
				log.Error("stream error", "payload", string(msg))
			}
			return
		}
		if s, _ := jsonparser.GetString(msg, "S"); s != symbol {
			return
		}
		price, err := jsonparser.GetFloat(msg, "p")
		if err != nil {
			return
		}
		prices <- price
	})
}

func connectAndSubscribe(symbol string) (*websocket.Conn, error) {
	log.Info("connecting to data stream", "symbol", symbol)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dial data stream")
	}

	for _, payload := range subscribeMessages(symbol) {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			return nil, errors.Wrap(err, "write subscribe payload")
		}
	}

	return conn, nil
}

func process(conn *websocket.Conn, symbol string, prices chan<- float64) {
	defer conn.Close()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(300 * time.Second)); err != nil {
			return
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Warn("stream read failed, reconnecting", "err", err)
			conn2, err := connectAndSubscribe(symbol)
			if err != nil {
				log.Error("reconnect failed", "err", err)
				close(prices)
				return
			}
			go process(conn2, symbol, prices)
			return
		}

		handle(msg, symbol, prices)
	}
}

// Trades connects to the data stream and returns a channel of raw trade
// prices for symbol. The channel is closed if the stream cannot be
// re-established after a read failure.
func Trades(symbol string) (<-chan float64, error) {
	conn, err := connectAndSubscribe(symbol)
	if err != nil {
		return nil, err
	}

	prices := make(chan float64, 1000)
	go process(conn, symbol, prices)

	return prices, nil
}
