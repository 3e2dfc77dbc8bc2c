package handlers_integrated_test_suite

import (
	"fmt"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	if os.Getenv(DatabaseURLEnv) == "" {
		fmt.Printf("skipping integrated handler tests: %s not set\n", DatabaseURLEnv)
		os.Exit(0)
	}
	if err := setupTestRepos(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	code := m.Run()
	clearAll()
	database.Close()
	os.Exit(code)
}
