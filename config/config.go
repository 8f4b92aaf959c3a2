package config

import (
	"fmt"
	"os"
)

const DB_NAME string = "ticketing-service"
const DEFAULT_LISTEN_ADDR string = ":80"
const TOKEN_TTL_HOURS int = 8

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func GetListenAddr() string {
	if addr, err := GetSecret("LISTEN_ADDR"); err == nil {
		return addr
	}
	return DEFAULT_LISTEN_ADDR
}
