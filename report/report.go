// Package report renders benchmark results into a standalone HTML page.
package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"flint/bench"
)

type card struct {
	Title      string
	Badge      string
	AvgNs      int64
	MedianNs   int64
	P99Ns      int64
	Throughput string
	TotalTime  string
	Fills      int
	Skipped    int
}

type page struct {
	Generated string
	Cards     []card
}

// Render writes the performance report for the given runs.
func Render(w io.Writer, results ...bench.Result) error {
	p := page{Generated: time.Now().Format(time.RFC1123)}
	for _, r := range results {
		p.Cards = append(p.Cards, card{
			Title:      r.Label,
			Badge:      fmt.Sprintf("%d orders", r.OrdersProcessed),
			AvgNs:      r.AvgLatency.Nanoseconds(),
			MedianNs:   r.MedianLatency.Nanoseconds(),
			P99Ns:      r.P99Latency.Nanoseconds(),
			Throughput: fmt.Sprintf("%.0f ops/s", r.Throughput),
			TotalTime:  fmt.Sprintf("%.2f ms", float64(r.TotalTime.Microseconds())/1000),
			Fills:      r.FillsGenerated,
			Skipped:    r.SkippedRows,
		})
	}
	return pageTmpl.Execute(w, p)
}

// WriteFile renders the report to path.
func WriteFile(path string, results ...bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, results...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var pageTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Order Book Performance Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 40px 20px;
        }
        .header { text-align: center; color: white; margin-bottom: 40px; }
        .header h1 { font-size: 2.5em; margin-bottom: 10px; }
        .header p { font-size: 1.2em; opacity: 0.9; }
        .container {
            max-width: 1400px;
            margin: 0 auto;
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(350px, 1fr));
            gap: 30px;
        }
        .card {
            background: white;
            border-radius: 15px;
            padding: 30px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.2);
        }
        .card h2 {
            color: #667eea;
            margin-bottom: 25px;
            font-size: 1.8em;
            border-bottom: 3px solid #667eea;
            padding-bottom: 10px;
        }
        .badge {
            display: inline-block;
            padding: 5px 15px;
            border-radius: 20px;
            font-size: 0.85em;
            font-weight: bold;
            background: #e3f2fd;
            color: #1976d2;
        }
        .metric {
            margin: 20px 0;
            padding: 15px;
            background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%);
            border-radius: 8px;
            border-left: 5px solid #667eea;
        }
        .metric-label { font-size: 0.95em; color: #666; font-weight: 600; margin-bottom: 5px; }
        .metric-value { font-size: 2em; font-weight: bold; color: #333; }
        .footer { text-align: center; margin-top: 50px; color: white; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Order Book Performance Report</h1>
        <p>Generated {{.Generated}}</p>
    </div>
    <div class="container">
{{range .Cards}}
        <div class="card">
            <h2>{{.Title}}</h2>
            <span class="badge">{{.Badge}}</span>
            <div class="metric">
                <div class="metric-label">Average Latency</div>
                <div class="metric-value">{{.AvgNs}} ns</div>
            </div>
            <div class="metric">
                <div class="metric-label">Median Latency</div>
                <div class="metric-value">{{.MedianNs}} ns</div>
            </div>
            <div class="metric">
                <div class="metric-label">P99 Latency</div>
                <div class="metric-value">{{.P99Ns}} ns</div>
            </div>
            <div class="metric">
                <div class="metric-label">Throughput</div>
                <div class="metric-value">{{.Throughput}}</div>
            </div>
            <div class="metric">
                <div class="metric-label">Total Time</div>
                <div class="metric-value">{{.TotalTime}}</div>
            </div>
            <div class="metric">
                <div class="metric-label">Fills Generated</div>
                <div class="metric-value">{{.Fills}}</div>
            </div>
        </div>
{{end}}
    </div>
    <div class="footer">
        <p>Single-threaded price-time priority matching engine</p>
    </div>
</body>
</html>
`))
