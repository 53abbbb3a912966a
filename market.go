package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type sellRequest struct {
	Price uint64 `json:"price"`
}

type buyRequest struct {
	Payment uint64 `json:"payment"`
}

func handleSell() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requester(c)
		if !ok {
			return
		}
		tokenID, ok := paramUint(c, "tokenId")
		if !ok {
			return
		}

		var req sellRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := reg.PutToSell(caller, tokenID, req.Price); err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token_id": tokenID, "price": req.Price})
	}
}

func handleBuy() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := requester(c)
		if !ok {
			return
		}
		tokenID, ok := paramUint(c, "tokenId")
		if !ok {
			return
		}

		var req buyRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := reg.Buy(caller, tokenID, req.Payment); err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token_id": tokenID, "owner": caller})
	}
}

func handleOwnerOf() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID, ok := paramUint(c, "tokenId")
		if !ok {
			return
		}

		owner, err := reg.OwnerOf(tokenID)
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"owner": owner})
	}
}

func handleContentURI() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID, ok := paramUint(c, "tokenId")
		if !ok {
			return
		}

		uri, err := reg.ContentURI(tokenID)
		if err != nil {
			checkErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"uri": uri})
	}
}
