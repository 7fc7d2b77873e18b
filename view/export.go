package view

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/utils"
)

type resultJson struct {
	Name         string  `json:"name"`
	FinalCounter int64   `json:"final_counter"`
	Expected     int64   `json:"expected"`
	TimeSeconds  float64 `json:"time_seconds"`
	Comment      string  `json:"comment"`
}

func exportCsv(results []harness.Result) ([]string, [][]string) {
	headers := []string{"Test", "Final-Counter", "Expected", "Time-Seconds", "Comment"}
	var rows [][]string
	for _, r := range Order(results) {
		rows = append(rows, []string{
			r.Name,
			utils.FormatCount(r.FinalCounter),
			strconv.FormatInt(r.Expected, 10),
			utils.FormatSeconds(r.Seconds()),
			Comment(r),
		})
	}
	return headers, rows
}

func RenderCsv(w io.Writer, results []harness.Result) error {
	headers, rows := exportCsv(results)
	writer := csv.NewWriter(w)

	err := writer.Write(headers)
	if err != nil {
		return err
	}
	for _, row := range rows {
		err := writer.Write(row)
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func RenderJson(w io.Writer, results []harness.Result) error {
	jsonValue := struct {
		Items []resultJson `json:"items"`
	}{}
	for _, r := range Order(results) {
		jsonValue.Items = append(jsonValue.Items, resultJson{
			Name:         r.Name,
			FinalCounter: r.FinalCounter,
			Expected:     r.Expected,
			TimeSeconds:  r.Seconds(),
			Comment:      Comment(r),
		})
	}
	jsonData, err := json.Marshal(jsonValue)
	if err != nil {
		return err
	}
	_, err = w.Write(append(jsonData, '\n'))
	return err
}
