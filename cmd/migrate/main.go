// Command migrate applies the goose migrations to a target tenant database.
// The service itself never migrates at startup; tenant schemas are provisioned
// explicitly with this tool.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		host = flag.String("host", "localhost", "database host")
		port = flag.Int("port", 3306, "database port")
		user = flag.String("user", "", "database user")
		pass = flag.String("pass", "", "database password")
		name = flag.String("db", "", "database name")
		dir  = flag.String("dir", "migrations/goose_sql", "migrations directory")
		cmd  = flag.String("cmd", "up", "goose command: up, down, status")
	)
	flag.Parse()

	if *user == "" || *name == "" {
		log.Fatal("❌ -user and -db are required")
	}

	mc := mysql.NewConfig()
	mc.User = *user
	mc.Passwd = *pass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(*host, fmt.Sprintf("%d", *port))
	mc.DBName = *name
	mc.ParseTime = true

	db, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		log.Fatalf("❌ Open failed: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("mysql"); err != nil {
		log.Fatalf("❌ Dialect: %v", err)
	}

	switch *cmd {
	case "up":
		err = goose.Up(db, *dir)
	case "down":
		err = goose.Down(db, *dir)
	case "status":
		err = goose.Status(db, *dir)
	default:
		log.Fatalf("❌ Unknown command %q", *cmd)
	}
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Done")
}
