package swap

//const -
const (
	CREATETBL string = "CREATE TABLE IF NOT EXISTS transferfiles (hash TEXT NOT NULL PRIMARY KEY, source TEXT, destination TEXT);"
	INSERT    string = "INSERT INTO transferfiles (hash, source, destination) VALUES (?, ?, ?);"
	EXISTS    string = "SELECT 1 FROM transferfiles WHERE hash = ? LIMIT 1;"
	COUNT     string = "SELECT count(*) FROM transferfiles;"
)

//Record - one transferred file
type Record struct {
	Hash        string
	Source      string
	Destination string
}
