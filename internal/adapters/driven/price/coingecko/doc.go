// Package coingecko implements the price source against the CoinGecko
// simple-price API. Crypto currencies map to CoinGecko coin ids, fiat
// currencies to vs_currency codes; a pair outside both tables is
// unsupported.
package coingecko
