package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/6453mike/PolarizedLadder/board"
)

// AnalyzeLogFile reads a game log written by CompVsComp and summarizes it.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.FieldsPerRecord = len(gameLogHeader)

	// Record looks like:
	// gameID,first,second,winner,turns,firstnodes,secondnodes
	var results []GameResult
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == gameLogHeader[0] {
			continue
		}
		res, err := parseGameRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", filepath, err)
		}
		results = append(results, res)
	}
	return Summarize(results), nil
}

func parseGameRecord(record []string) (GameResult, error) {
	var res GameResult
	var err error
	if res.GameID, err = strconv.Atoi(record[0]); err != nil {
		return res, err
	}
	res.Names = [2]string{record[1], record[2]}
	if len(record[3]) != 1 {
		return res, fmt.Errorf("bad winner %q", record[3])
	}
	res.Winner = board.PlayerFromSymbol(record[3][0])
	if res.Turns, err = strconv.Atoi(record[4]); err != nil {
		return res, err
	}
	for i := 0; i < 2; i++ {
		if res.Nodes[i], err = strconv.ParseUint(record[5+i], 10, 64); err != nil {
			return res, err
		}
	}
	return res, nil
}
