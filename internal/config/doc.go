// Package config provides configuration parsing for extstats.
//
// The configuration is stored in extstats.json (or extstats.toml) next to
// the data file. Every field is optional; missing values take defaults.
//
// # Configuration File Structure
//
//	{
//	  "site": {
//	    "title": "Chrome Extensions Archive",
//	    "githubUrl": "https://github.com/mdamien/chrome-extensions-archive",
//	    "sourceViewerUrl": "/source/crxviewer.html?crx=",
//	    "styleSheet": "/style.css"
//	  },
//	  "build": {
//	    "data": "exts.json",
//	    "output": "site",
//	    "perPage": 100
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 8080
//	  },
//	  "s3": {
//	    "bucket": "",
//	    "prefix": "",
//	    "region": "us-east-1"
//	  }
//	}
//
// The same keys are accepted in TOML:
//
//	[build]
//	data = "exts.json"
//	perPage = 50
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
